package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"veripay/internal/compliance/models"
	pstrings "veripay/pkg/platform/strings"
)

// Client talks to the processor's REST API. Calls are bounded by the HTTP
// client timeout; there is no automatic retry.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient constructs a processor API client.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) UploadDocument(ctx context.Context, accountID string, in UploadInput) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("purpose", string(in.Purpose)); err != nil {
		return "", fmt.Errorf("encode upload: %w", err)
	}
	part, err := writer.CreateFormFile("file", in.Filename)
	if err != nil {
		return "", fmt.Errorf("encode upload: %w", err)
	}
	if _, err := part.Write(in.Content); err != nil {
		return "", fmt.Errorf("encode upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("encode upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/files", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req, accountID)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		return "", ErrUploadRejected
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upload document: unexpected status %d", resp.StatusCode)
	}

	var parsed struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	return parsed.ID, nil
}

func (c *Client) UpdateAccountDocument(ctx context.Context, accountID, bucket string, fileRefs []string) error {
	form := url.Values{}
	for i, ref := range fileRefs {
		form.Set(fmt.Sprintf("documents[%s][files][%d]", bucket, i), ref)
	}
	return c.postForm(ctx, "/v1/accounts/"+accountID, accountID, form)
}

func (c *Client) UpdateAccountEntityDocument(ctx context.Context, accountID, front string) error {
	form := url.Values{}
	form.Set("company[verification][document][front]", front)
	return c.postForm(ctx, "/v1/accounts/"+accountID, accountID, form)
}

func (c *Client) UpdatePersonDocument(ctx context.Context, accountID, personID, bucket string, shape models.WireShape, fileRef string) error {
	form := url.Values{}
	switch shape {
	case models.ShapeFiles:
		form.Set(fmt.Sprintf("documents[%s][files][0]", bucket), fileRef)
	default:
		// Dotted buckets ("verification.document") nest in the form encoding.
		segments := strings.Split(bucket, ".")
		key := segments[0]
		for _, segment := range segments[1:] {
			key += "[" + segment + "]"
		}
		form.Set(key+"[front]", fileRef)
	}
	path := fmt.Sprintf("/v1/accounts/%s/persons/%s", accountID, personID)
	return c.postForm(ctx, path, accountID, form)
}

func (c *Client) UpdateBusinessTaxID(ctx context.Context, accountID, taxID string) error {
	form := url.Values{}
	form.Set("company[vat_id]", taxID)
	return c.postForm(ctx, "/v1/accounts/"+accountID, accountID, form)
}

func (c *Client) MostRecentPerson(ctx context.Context, accountID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/accounts/"+accountID+"/persons", nil)
	if err != nil {
		return "", err
	}
	c.authorize(req, accountID)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("list persons: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("list persons: unexpected status %d", resp.StatusCode)
	}

	var parsed struct {
		Data []struct {
			ID      string `json:"id"`
			Created int64  `json:"created"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode persons response: %w", err)
	}
	if len(parsed.Data) == 0 {
		return "", ErrNoPerson
	}
	// The listing is creation-ordered; the last entry is the most recently
	// added person. Equal creation timestamps make the choice ambiguous.
	last := parsed.Data[len(parsed.Data)-1]
	for _, person := range parsed.Data[:len(parsed.Data)-1] {
		if person.Created == last.Created {
			return "", ErrAmbiguousPerson
		}
	}
	return last.ID, nil
}

func (c *Client) CreateVerificationSession(ctx context.Context, accountID, returnURL string) (string, error) {
	form := url.Values{}
	form.Set("account", accountID)
	form.Set("refresh_url", returnURL)
	form.Set("return_url", returnURL)
	form.Set("type", "account_onboarding")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/account_links", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.authorize(req, accountID)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("create verification session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("create verification session: unexpected status %d", resp.StatusCode)
	}

	var parsed struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode session response: %w", err)
	}
	return parsed.URL, nil
}

func (c *Client) FetchOutstandingRequirements(ctx context.Context, accountID string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/accounts/"+accountID, nil)
	if err != nil {
		return nil, err
	}
	c.authorize(req, accountID)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch requirements: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch requirements: unexpected status %d", resp.StatusCode)
	}

	var parsed struct {
		Requirements struct {
			EventuallyDue []string `json:"eventually_due"`
		} `json:"requirements"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode requirements response: %w", err)
	}
	return pstrings.DedupeAndTrim(parsed.Requirements.EventuallyDue), nil
}

func (c *Client) postForm(ctx context.Context, path, accountID string, form url.Values) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.authorize(req, accountID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("update %s: %w", path, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("update %s: unexpected status %d", path, resp.StatusCode)
	}
	return nil
}

func (c *Client) authorize(req *http.Request, accountID string) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	// Connected-account scoping, matching the processor's header convention.
	req.Header.Set("Processor-Account", accountID)
}
