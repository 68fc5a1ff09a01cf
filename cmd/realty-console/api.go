package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type sessionInfo struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Demo  bool   `json:"demo"`
}

type feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type dashboard struct {
	Variant    string    `json:"variant"`
	Title      string    `json:"title"`
	Banner     string    `json:"banner"`
	Message    string    `json:"message"`
	Features   []feature `json:"features"`
	Navigation []string  `json:"navigation"`
}

type property struct {
	Type    string  `json:"type"`
	Address string  `json:"address"`
	Area    float64 `json:"area"`
}

type contract struct {
	Type              string  `json:"type"`
	PropertyAddress   string  `json:"propertyAddress"`
	CreatorEmail      string  `json:"creatorEmail"`
	CounterpartyEmail string  `json:"counterpartyEmail"`
	Amount            float64 `json:"amount"`
	Status            string  `json:"status"`
}

type summary struct {
	PropertyCount        int     `json:"propertyCount"`
	TotalArea            float64 `json:"totalArea"`
	AverageArea          float64 `json:"averageArea"`
	ContractCount        int     `json:"contractCount"`
	ActiveContractAmount float64 `json:"activeContractAmount"`
}

// apiClient talks to the realty server REST API.
type apiClient struct {
	base  string
	lang  string
	token string
	http  *http.Client
}

func newAPIClient(base, lang string) *apiClient {
	return &apiClient{
		base: strings.TrimRight(base, "/"),
		lang: lang,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// do sends the request and decodes the "data" member of the reply into
// out. Error replies surface the server's localized message.
func (c *apiClient) do(method, path string, body, out any) error {
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequest(method, c.base+path, &payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.lang != "" {
		req.Header.Set("Accept-Language", c.lang)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("server not reachable: %w", err)
	}
	defer resp.Body.Close()

	var envelope struct {
		Data  json.RawMessage `json:"data"`
		Error string          `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("unexpected reply (%d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode >= 400 {
		if envelope.Error != "" {
			return errors.New(envelope.Error)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}
	if out == nil || len(envelope.Data) == 0 {
		return nil
	}
	return json.Unmarshal(envelope.Data, out)
}

func (c *apiClient) login(email, password, role string) (sessionInfo, error) {
	var s sessionInfo
	err := c.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": email, "password": password, "role": role,
	}, &s)
	if err == nil {
		c.token = s.Token
	}
	return s, err
}

func (c *apiClient) demo(phone, role string) (sessionInfo, error) {
	var s sessionInfo
	err := c.do(http.MethodPost, "/api/v1/auth/demo", map[string]string{
		"phoneNumber": phone, "role": role,
	}, &s)
	if err == nil {
		c.token = s.Token
	}
	return s, err
}

func (c *apiClient) logout() error {
	err := c.do(http.MethodPost, "/api/v1/auth/logout", nil, nil)
	c.token = ""
	return err
}

func (c *apiClient) dashboard() (dashboard, error) {
	var d dashboard
	return d, c.do(http.MethodGet, "/api/v1/dashboard", nil, &d)
}

func (c *apiClient) properties() ([]property, error) {
	var list []property
	return list, c.do(http.MethodGet, "/api/v1/properties", nil, &list)
}

func (c *apiClient) contracts() ([]contract, error) {
	var list []contract
	return list, c.do(http.MethodGet, "/api/v1/contracts", nil, &list)
}

func (c *apiClient) analytics() (summary, error) {
	var s summary
	return s, c.do(http.MethodGet, "/api/v1/analytics", nil, &s)
}
