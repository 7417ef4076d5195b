// Package vision runs product photos through the Google Cloud Vision
// images:annotate endpoint and digests the result into listing-oriented
// product details.
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"lister-backend/internal/model"
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Client calls the Vision REST API with an API key.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Vision client. The key comes from GOOGLE_API_KEY.
func NewClient() *Client {
	return &Client{
		baseURL: getenv("VISION_BASE_URL", "https://vision.googleapis.com"),
		apiKey:  os.Getenv("GOOGLE_API_KEY"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type annotateRequest struct {
	Requests []annotateEntry `json:"requests"`
}

type annotateEntry struct {
	Image    annotateImage     `json:"image"`
	Features []annotateFeature `json:"features"`
}

type annotateImage struct {
	Content string `json:"content"`
}

type annotateFeature struct {
	Type string `json:"type"`
}

type annotateResponse struct {
	Responses []annotationSet `json:"responses"`
}

type annotationSet struct {
	LocalizedObjectAnnotations []objectAnnotation `json:"localizedObjectAnnotations"`
	LabelAnnotations           []labelAnnotation  `json:"labelAnnotations"`
	TextAnnotations            []textAnnotation   `json:"textAnnotations"`
	ImagePropertiesAnnotation  *imageProperties   `json:"imagePropertiesAnnotation"`
	Error                      *annotationError   `json:"error"`
}

type objectAnnotation struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

type labelAnnotation struct {
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

type textAnnotation struct {
	Description string `json:"description"`
}

type imageProperties struct {
	DominantColors struct {
		Colors []colorInfo `json:"colors"`
	} `json:"dominantColors"`
}

type colorInfo struct {
	Color struct {
		Red   float64 `json:"red"`
		Green float64 `json:"green"`
		Blue  float64 `json:"blue"`
	} `json:"color"`
	Score         float64 `json:"score"`
	PixelFraction float64 `json:"pixelFraction"`
}

type annotationError struct {
	Message string `json:"message"`
}

// Annotate runs object localization, label detection, text detection and
// image-properties analysis on one image.
func (c *Client) Annotate(ctx context.Context, image []byte) (*model.VisionResult, error) {
	reqBody := annotateRequest{
		Requests: []annotateEntry{{
			Image: annotateImage{Content: base64.StdEncoding.EncodeToString(image)},
			Features: []annotateFeature{
				{Type: "OBJECT_LOCALIZATION"},
				{Type: "LABEL_DETECTION"},
				{Type: "TEXT_DETECTION"},
				{Type: "IMAGE_PROPERTIES"},
			},
		}},
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("vision: marshal request: %w", err)
	}

	u := c.baseURL + "/v1/images:annotate?key=" + c.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("vision: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vision: annotate: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vision: annotate: status %d", resp.StatusCode)
	}

	var body annotateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("vision: annotate: decode: %w", err)
	}
	if len(body.Responses) == 0 {
		return nil, fmt.Errorf("vision: annotate: empty response")
	}
	set := body.Responses[0]
	if set.Error != nil {
		return nil, fmt.Errorf("vision: annotate: %s", set.Error.Message)
	}

	result := &model.VisionResult{Text: []string{}}
	for _, obj := range set.LocalizedObjectAnnotations {
		result.Objects = append(result.Objects, model.VisionObject{
			Name:       obj.Name,
			Confidence: obj.Score,
		})
	}
	for _, label := range set.LabelAnnotations {
		result.Labels = append(result.Labels, model.VisionLabel{
			Description: label.Description,
			Confidence:  label.Score,
		})
	}
	for _, text := range set.TextAnnotations {
		result.Text = append(result.Text, text.Description)
	}
	if set.ImagePropertiesAnnotation != nil {
		for _, ci := range set.ImagePropertiesAnnotation.DominantColors.Colors {
			result.Colors = append(result.Colors, model.VisionColor{
				Red:           int(ci.Color.Red),
				Green:         int(ci.Color.Green),
				Blue:          int(ci.Color.Blue),
				Score:         ci.Score,
				PixelFraction: ci.PixelFraction,
			})
		}
	}
	return result, nil
}
