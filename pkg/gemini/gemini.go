package gemini

import (
	"errors"

	"GarmentGolang/internal/entity"
	"github.com/google/generative-ai-go/genai"
	"golang.org/x/net/context"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

var ErrMissingAPIKey = errors.New("gemini API key is required")

// UpstreamReason tells the caller why a model call failed with enough
// detail to decide whether re-prompting for a credential makes sense.
type UpstreamReason string

const (
	ReasonPermissionDenied UpstreamReason = "permission_denied"
	ReasonNotFound         UpstreamReason = "not_found"
	ReasonQuotaExceeded    UpstreamReason = "quota_exceeded"
	ReasonReferrerBlocked  UpstreamReason = "referrer_blocked"
	ReasonEmptyResponse    UpstreamReason = "empty_response"
	ReasonTransport        UpstreamReason = "transport"
)

type UpstreamError struct {
	Reason UpstreamReason
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return "gemini upstream failure: " + string(e.Reason)
	}
	return "gemini upstream failure (" + string(e.Reason) + "): " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// CredentialRelated reports whether the failure points at the API key
// itself rather than a transient upstream problem.
func (e *UpstreamError) CredentialRelated() bool {
	switch e.Reason {
	case ReasonPermissionDenied, ReasonNotFound, ReasonReferrerBlocked:
		return true
	}
	return false
}

type IGemini interface {
	AnalyzeImage(ctx context.Context, imageData []byte, prompt string, model entity.GarmentModel) (string, error)
}

// Config is supplied explicitly by the composition root; the client never
// reads the environment itself.
type Config struct {
	APIKey     string
	FlashModel string
	ProModel   string
}

type geminiClient struct {
	config Config
	client *genai.Client
}

func New(ctx context.Context, config Config) (IGemini, error) {
	if config.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	if config.FlashModel == "" {
		config.FlashModel = "gemini-1.5-flash"
	}
	if config.ProModel == "" {
		config.ProModel = "gemini-1.5-pro"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(config.APIKey))
	if err != nil {
		return nil, err
	}

	return &geminiClient{
		config: config,
		client: client,
	}, nil
}

func (g *geminiClient) modelName(model entity.GarmentModel) string {
	if model == entity.ModelPro {
		return g.config.ProModel
	}
	return g.config.FlashModel
}

// AnalyzeImage submits the image as an inline JPEG part together with the
// prompt and returns the raw response text. Exactly one outbound call per
// invocation; retry policy belongs to the caller.
func (g *geminiClient) AnalyzeImage(ctx context.Context, imageData []byte, prompt string, model entity.GarmentModel) (string, error) {
	genModel := g.client.GenerativeModel(g.modelName(model))

	img := genai.ImageData("image/jpeg", imageData)
	res, err := genModel.GenerateContent(ctx, genai.Text(prompt), img)
	if err != nil {
		return "", classify(err)
	}

	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return "", &UpstreamError{Reason: ReasonEmptyResponse}
	}

	text, ok := res.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", &UpstreamError{Reason: ReasonEmptyResponse, Err: errors.New("first response part is not text")}
	}

	return string(text), nil
}

func classify(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 403:
			for _, item := range apiErr.Errors {
				if item.Reason == "API_KEY_HTTP_REFERRER_BLOCKED" {
					return &UpstreamError{Reason: ReasonReferrerBlocked, Err: err}
				}
			}
			return &UpstreamError{Reason: ReasonPermissionDenied, Err: err}
		case 404:
			return &UpstreamError{Reason: ReasonNotFound, Err: err}
		case 429:
			return &UpstreamError{Reason: ReasonQuotaExceeded, Err: err}
		}
	}
	return &UpstreamError{Reason: ReasonTransport, Err: err}
}

func (g *geminiClient) Close() {
	if g.client != nil {
		g.client.Close()
	}
}
