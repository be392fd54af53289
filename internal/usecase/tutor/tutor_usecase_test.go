package tutor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"mualleem-api/internal/domain/entity"
)

type fakeEmbedder struct {
	err error
}

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{1, 0}
	}
	return vectors, nil
}

type fakeVectorRepo struct {
	hits      []entity.ScoredChunk
	searchErr error
	lastLimit int
}

func (f *fakeVectorRepo) EnsureCollection(ctx context.Context) error { return nil }

func (f *fakeVectorRepo) Upsert(ctx context.Context, points []entity.Point) error { return nil }

func (f *fakeVectorRepo) Search(ctx context.Context, vector []float32, limit int) ([]entity.ScoredChunk, error) {
	f.lastLimit = limit
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.hits, nil
}

func (f *fakeVectorRepo) Stats(ctx context.Context) (entity.CollectionStats, error) {
	return entity.CollectionStats{Name: "curriculum_textbooks"}, nil
}

func (f *fakeVectorRepo) Clear(ctx context.Context) error { return nil }

type fakeChat struct {
	answer       string
	err          error
	lastQuestion string
	lastContext  string
	lastImageURL string
}

func (f *fakeChat) GenerateAnswer(ctx context.Context, question, contextText, imageDataURL string) (string, string, error) {
	f.lastQuestion = question
	f.lastContext = contextText
	f.lastImageURL = imageDataURL
	if f.err != nil {
		return "", "openai/gpt-4o-mini", f.err
	}
	return f.answer, "openai/gpt-4o-mini", nil
}

func rankedHits() []entity.ScoredChunk {
	return []entity.ScoredChunk{
		{Payload: entity.ChunkPayload{Text: "الكسور", Document: "math", ChunkIndex: 4, ChunkSize: 900}, Score: 0.91},
		{Payload: entity.ChunkPayload{Text: "الجمع", Document: "math", ChunkIndex: 1, ChunkSize: 1000}, Score: 0.73},
		{Payload: entity.ChunkPayload{Text: "الهندسة", Document: "geometry", ChunkIndex: 7, ChunkSize: 640}, Score: 0.40},
	}
}

func TestRetrievePreservesRanking(t *testing.T) {
	repo := &fakeVectorRepo{hits: rankedHits()}
	uc := NewUsecase(repo, &fakeEmbedder{}, &fakeChat{}, 3)

	result := uc.Retrieve(context.Background(), "ما هي الكسور؟", 3)
	if result.Failure != nil {
		t.Fatalf("unexpected failure: %v", result.Failure)
	}
	if result.TotalResults != 3 || len(result.ContextChunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(result.ContextChunks))
	}
	if repo.lastLimit != 3 {
		t.Errorf("search limit = %d, want 3", repo.lastLimit)
	}

	wantScores := []float64{0.91, 0.73, 0.40}
	for i, chunk := range result.ContextChunks {
		if chunk.Score != wantScores[i] {
			t.Errorf("chunk %d score = %v, want %v", i, chunk.Score, wantScores[i])
		}
	}

	first := result.ContextChunks[0]
	if first.Text != "الكسور" || first.Document != "math" || first.ChunkIndex != 4 || first.ChunkSize != 900 {
		t.Errorf("chunk 0 payload mapped incorrectly: %+v", first)
	}
}

func TestRetrieveEmptyCollection(t *testing.T) {
	uc := NewUsecase(&fakeVectorRepo{}, &fakeEmbedder{}, &fakeChat{}, 3)

	result := uc.Retrieve(context.Background(), "", 3)
	if result.Failure != nil {
		t.Fatalf("empty collection should not be a failure: %v", result.Failure)
	}
	if result.ContextChunks == nil || len(result.ContextChunks) != 0 {
		t.Errorf("got %v, want empty non-nil context list", result.ContextChunks)
	}
	if result.TotalResults != 0 {
		t.Errorf("total results = %d, want 0", result.TotalResults)
	}
}

func TestRetrieveDegradesGracefully(t *testing.T) {
	embedErr := errors.New("provider unreachable")
	searchErr := errors.New("store down")

	tests := []struct {
		name      string
		embedder  *fakeEmbedder
		repo      *fakeVectorRepo
		wantStage entity.RetrievalStage
		wantCause error
	}{
		{"embedding failure", &fakeEmbedder{err: embedErr}, &fakeVectorRepo{}, entity.StageEmbedding, embedErr},
		{"search failure", &fakeEmbedder{}, &fakeVectorRepo{searchErr: searchErr}, entity.StageSearch, searchErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUsecase(tt.repo, tt.embedder, &fakeChat{}, 3)
			result := uc.Retrieve(context.Background(), "سؤال", 3)

			if len(result.ContextChunks) != 0 || result.TotalResults != 0 {
				t.Errorf("degraded retrieval should return an empty context")
			}
			if result.Failure == nil {
				t.Fatalf("failure cause missing")
			}
			if result.Failure.Stage != tt.wantStage {
				t.Errorf("failure stage = %q, want %q", result.Failure.Stage, tt.wantStage)
			}
			if !errors.Is(result.Failure, tt.wantCause) {
				t.Errorf("failure does not wrap the underlying cause")
			}
		})
	}
}

func TestAskJoinsContext(t *testing.T) {
	chat := &fakeChat{answer: "الإجابة"}
	uc := NewUsecase(&fakeVectorRepo{hits: rankedHits()}, &fakeEmbedder{}, chat, 3)

	answer, err := uc.Ask(context.Background(), "ما هي الكسور؟", nil, "")
	if err != nil {
		t.Fatalf("ask failed: %v", err)
	}
	if !answer.ContextUsed {
		t.Errorf("context_used = false, want true")
	}
	if want := "الكسور\n\nالجمع\n\nالهندسة"; chat.lastContext != want {
		t.Errorf("chat context = %q, want %q", chat.lastContext, want)
	}
	if chat.lastImageURL != "" {
		t.Errorf("unexpected image data url %q", chat.lastImageURL)
	}
}

func TestAskProceedsWithoutContext(t *testing.T) {
	chat := &fakeChat{answer: "الإجابة"}
	uc := NewUsecase(&fakeVectorRepo{}, &fakeEmbedder{err: errors.New("provider unreachable")}, chat, 3)

	answer, err := uc.Ask(context.Background(), "سؤال", nil, "")
	if err != nil {
		t.Fatalf("ask should answer without context, got: %v", err)
	}
	if answer.ContextUsed {
		t.Errorf("context_used = true after degraded retrieval")
	}
	if chat.lastContext != "" {
		t.Errorf("chat received context %q after degraded retrieval", chat.lastContext)
	}
	if answer.Text != "الإجابة" {
		t.Errorf("answer = %q", answer.Text)
	}
}

func TestAskEncodesImage(t *testing.T) {
	chat := &fakeChat{answer: "الإجابة"}
	uc := NewUsecase(&fakeVectorRepo{}, &fakeEmbedder{}, chat, 3)

	if _, err := uc.Ask(context.Background(), "ما هذا؟", []byte{0xFF, 0xD8, 0xFF}, "image/jpeg"); err != nil {
		t.Fatalf("ask failed: %v", err)
	}
	if !strings.HasPrefix(chat.lastImageURL, "data:image/jpeg;base64,") {
		t.Errorf("image data url = %q, want jpeg data url", chat.lastImageURL)
	}
}

func TestAskChatFailurePropagates(t *testing.T) {
	chat := &fakeChat{err: errors.New("model unavailable")}
	uc := NewUsecase(&fakeVectorRepo{}, &fakeEmbedder{}, chat, 3)

	if _, err := uc.Ask(context.Background(), "سؤال", nil, ""); err == nil {
		t.Fatalf("ask succeeded, want error")
	}
}
