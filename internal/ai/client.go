package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"skillpath-backend/internal/model"
)

// Client defines the interface for the external AI backend.
type Client interface {
	GenerateAssessment(topic, level string, questionCount int) ([]model.AssessmentQuestion, error)
}

type httpClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient initializes an AI backend client.
func NewClient(baseURL, apiKey string) Client {
	return &httpClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type createAssessmentRequest struct {
	Topic         string `json:"topic"`
	Level         string `json:"level"`
	QuestionCount int    `json:"questionCount"`
}

type createAssessmentResponse struct {
	Assessment []struct {
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correctAnswer"`
	} `json:"assessment"`
}

// GenerateAssessment asks the backend for a multiple-choice question set.
func (c *httpClient) GenerateAssessment(topic, level string, questionCount int) ([]model.AssessmentQuestion, error) {
	requestBody, err := json.Marshal(createAssessmentRequest{
		Topic:         topic,
		Level:         level,
		QuestionCount: questionCount,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", c.baseURL+"/api/career/create-assessment", bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("assessment generation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("assessment backend returned status %d", resp.StatusCode)
	}

	var parsed createAssessmentResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("invalid response from assessment backend: %w", err)
	}
	if len(parsed.Assessment) == 0 {
		return nil, fmt.Errorf("assessment backend returned no questions")
	}

	questions := make([]model.AssessmentQuestion, 0, len(parsed.Assessment))
	for i, q := range parsed.Assessment {
		questions = append(questions, model.AssessmentQuestion{
			ID:            uuid.New().String(),
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Position:      i,
		})
	}
	return questions, nil
}
