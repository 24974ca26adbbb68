package advisor

import (
	"context"
	"io"

	"farmguru/models"
)

// Service answers farmer questions and symptom reports, optionally
// grounding them in an uploaded crop image. Implementations own the
// upload-then-ask sequencing; callers never juggle image ids themselves.
type Service interface {
	Ask(ctx context.Context, question, lang string) (*models.QueryResponse, error)
	AskWithImage(ctx context.Context, question, lang, filename string, image io.Reader) (*models.QueryResponse, error)
	Diagnose(ctx context.Context, req models.ChemRecoRequest) (*models.ChemRecoResponse, error)
	DiagnoseWithImage(ctx context.Context, req models.ChemRecoRequest, filename string, image io.Reader) (*models.ChemRecoResponse, error)
}
