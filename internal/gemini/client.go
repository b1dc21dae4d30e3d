package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/starboard-ai/deal-overview/constants"
	"github.com/starboard-ai/deal-overview/internal/common"
	"github.com/starboard-ai/deal-overview/internal/omschema"
)

// ExtractOfferingMemorandum sends one generateContent request with the PDF
// inline and the offering-memorandum response schema, and returns the model's
// raw text. The text is expected to be JSON matching the schema but is not
// parsed or validated here; that happens one layer up. A failed call is an
// extraction error, which is distinct from the returned text failing to
// parse.
func (c *Client) ExtractOfferingMemorandum(ctx context.Context, pdf []byte) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("gemini.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"pdf_bytes", len(pdf),
	)

	body := map[string]any{
		"contents": []map[string]any{{
			"role": "user",
			"parts": []map[string]any{
				{"inline_data": map[string]any{
					"mime_type": constants.ContentTypePDF,
					"data":      base64.StdEncoding.EncodeToString(pdf),
				}},
				{"text": extractionPrompt},
			},
		}},
		"generationConfig": map[string]any{
			"responseMimeType": "application/json",
			"responseSchema":   omschema.ResponseSchema(),
			"temperature":      c.cfg.Temperature,
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/models/" + c.cfg.Model + ":generateContent"
	raw, status, err := c.sendJSON(ctx, endpoint, body)
	if err != nil {
		c.logger.Error("gemini.extract.http_error",
			"req_id", rid, "status", status, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", common.NewAppError("EXTRACTION_ERROR", err.Error(), common.ErrExtraction)
	}

	var gr struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &gr); err != nil {
		c.logger.Error("gemini.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", common.NewAppError("EXTRACTION_ERROR", "decode gemini response: "+err.Error(), common.ErrExtraction)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		c.logger.Error("gemini.extract.no_candidates",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", common.NewAppError("EXTRACTION_ERROR", "no candidates in gemini response", common.ErrExtraction)
	}

	var sb strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := sb.String()

	c.logger.Info("gemini.extract.ok",
		"req_id", rid,
		"text_len", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}

// sendJSON posts a JSON body and returns the raw response bytes. Non-2xx
// statuses are errors; the body is still returned for logging.
func (c *Client) sendJSON(ctx context.Context, url string, body any) ([]byte, int, error) {
	bs, err := json.Marshal(body)
	if err != nil {
		return nil, 0, fmt.Errorf("encode json: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bs))
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func(Body io.ReadCloser) {
		if cerr := Body.Close(); cerr != nil {
			c.logger.Warn("gemini.http.response_body_close_error", "error", cerr)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return raw, resp.StatusCode, fmt.Errorf("non-2xx status %d: %s", resp.StatusCode, string(raw))
	}
	return raw, resp.StatusCode, nil
}
