// Package advisor composes the Farm-Guru client's upload and ask
// operations on behalf of a single anonymous user.
package advisor

import (
	"context"
	"io"

	"farmguru/client"
	"farmguru/config"
	"farmguru/models"
	"farmguru/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultAdvisor is the standard Service implementation. The upload step
// is best-effort: when it fails, the question still goes out text-only
// with the image context dropped, rather than aborting.
type DefaultAdvisor struct {
	API    *client.Client
	UserID string
	Logger *zap.Logger
}

// New returns an advisor with a fresh anonymous identity.
func New(api *client.Client) *DefaultAdvisor {
	return &DefaultAdvisor{
		API:    api,
		UserID: uuid.NewString(),
		Logger: utils.GetLogger(),
	}
}

// Ask sends a text-only question.
func (a *DefaultAdvisor) Ask(ctx context.Context, question, lang string) (*models.QueryResponse, error) {
	resp, err := a.API.Query(ctx, models.QueryRequest{
		UserID: a.UserID,
		Text:   question,
		Lang:   a.lang(lang),
	})
	if err != nil {
		return nil, err
	}
	a.API.TrackEvent(ctx, "query_submitted", map[string]any{
		"lang":      a.lang(lang),
		"mode":      resp.Meta.Mode(),
		"has_image": false,
	})
	return resp, nil
}

// AskWithImage uploads the image first and grounds the question in the
// returned image id. An upload failure does not abort the question.
func (a *DefaultAdvisor) AskWithImage(ctx context.Context, question, lang, filename string, image io.Reader) (*models.QueryResponse, error) {
	imageID := a.uploadImageID(ctx, filename, image)

	resp, err := a.API.Query(ctx, models.QueryRequest{
		UserID:  a.UserID,
		Text:    question,
		Lang:    a.lang(lang),
		ImageID: imageID,
	})
	if err != nil {
		return nil, err
	}
	a.API.TrackEvent(ctx, "query_submitted", map[string]any{
		"lang":      a.lang(lang),
		"mode":      resp.Meta.Mode(),
		"has_image": imageID != "",
	})
	return resp, nil
}

// Diagnose requests treatment guidance from a symptom description alone.
func (a *DefaultAdvisor) Diagnose(ctx context.Context, req models.ChemRecoRequest) (*models.ChemRecoResponse, error) {
	return a.API.ChemReco(ctx, req)
}

// DiagnoseWithImage uploads the image first and attaches its id to the
// symptom report, with the same degrade policy as AskWithImage.
func (a *DefaultAdvisor) DiagnoseWithImage(ctx context.Context, req models.ChemRecoRequest, filename string, image io.Reader) (*models.ChemRecoResponse, error) {
	req.ImageID = a.uploadImageID(ctx, filename, image)
	return a.API.ChemReco(ctx, req)
}

// uploadImageID performs the best-effort upload step. It returns "" when
// the upload fails so the subsequent call proceeds without image context.
func (a *DefaultAdvisor) uploadImageID(ctx context.Context, filename string, image io.Reader) string {
	up, err := a.API.UploadImage(ctx, filename, image)
	if err != nil {
		a.Logger.Warn("image upload failed, continuing without image context",
			zap.String("filename", filename),
			zap.Error(err))
		return ""
	}
	return up.ImageID
}

func (a *DefaultAdvisor) lang(lang string) string {
	if lang != "" {
		return lang
	}
	if config.AppConfig.DefaultLang != "" {
		return config.AppConfig.DefaultLang
	}
	return "en"
}
