package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shaiso/Conveyor/internal/domain"
)

// Статусы в ответе удалённого runner'а.
const (
	remoteStatusSuccess = "success"
	remoteStatusFailure = "failure"
)

// HTTPRunner отправляет invocation удалённому runner-сервису.
//
// Контракт: POST {URL}/execute с JSON StepInvocation; сервис блокирует
// ответ до терминального статуса шага и возвращает
// {"status": "success"|"failure", "error": "..."}.
type HTTPRunner struct {
	// URL — базовый адрес runner-сервиса (обязательно).
	URL string

	// Client — HTTP-клиент; nil означает клиент без таймаута
	// (шаги обучения могут выполняться часами, дедлайн задаёт ctx).
	Client *http.Client
}

// remoteResponse — тело ответа runner-сервиса.
type remoteResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Execute отправляет invocation и ждёт терминального статуса.
func (r *HTTPRunner) Execute(ctx context.Context, inv *domain.StepInvocation) (*domain.StepResult, error) {
	body, err := json.Marshal(inv)
	if err != nil {
		return nil, fmt.Errorf("marshal invocation: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.URL+"/execute", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrRemote, err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := r.Client
	if client == nil {
		client = &http.Client{Timeout: 0}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemote, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrRemote, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d", ErrRemote, resp.StatusCode)
	}

	var remote remoteResponse
	if err := json.Unmarshal(respBody, &remote); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}

	switch remote.Status {
	case remoteStatusSuccess:
		return &domain.StepResult{}, nil
	case remoteStatusFailure:
		errMsg := remote.Error
		if errMsg == "" {
			errMsg = "step failed without details"
		}
		return &domain.StepResult{Error: errMsg}, nil
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrBadResponse, remote.Status)
	}
}

// WaitTimeout возвращает клиент с заданным таймаутом ожидания.
// Удобно для коротких smoke-запусков в тестовой среде.
func WaitTimeout(d time.Duration) *http.Client {
	return &http.Client{Timeout: d}
}
