package erp

import (
	"Packlist/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const unknownError = "Unknown Error"

type Client interface {
	FetchPortalData(ctx context.Context, token string) (*PortalData, error)
	SubmitPackingList(ctx context.Context, params SubmitParams) (*SubmitResult, error)
}

type ClientImpl struct {
	baseURL    string
	dataPath   string
	submitPath string
	timeout    time.Duration
}

func NewClient(configuration *config.Configuration) Client {
	return &ClientImpl{
		baseURL:    strings.TrimRight(configuration.ERP.BaseURL, "/"),
		dataPath:   configuration.ERP.DataPath,
		submitPath: configuration.ERP.SubmitPath,
		timeout:    configuration.ERP.Timeout,
	}
}

func (c *ClientImpl) FetchPortalData(ctx context.Context, token string) (*PortalData, error) {
	var data PortalData
	if err := c.call(ctx, c.dataPath, map[string]string{"token": token}, &data); err != nil {
		return nil, err
	}
	if !data.Success {
		return nil, &RejectedError{Message: messageOr(data.Message)}
	}
	return &data, nil
}

// SubmitPackingList posts the consolidated packing list. A refusal reported
// by the ERP comes back as a *RejectedError.
func (c *ClientImpl) SubmitPackingList(ctx context.Context, params SubmitParams) (*SubmitResult, error) {
	var result SubmitResult
	if err := c.call(ctx, c.submitPath, params, &result); err != nil {
		return nil, err
	}
	if !result.Success {
		return &result, &RejectedError{Message: messageOr(result.Message)}
	}
	return &result, nil
}

func (c *ClientImpl) call(ctx context.Context, path string, params interface{}, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); timeout == 0 || remaining < timeout {
			timeout = remaining
		}
	}

	agent := fiber.Post(c.baseURL + path)
	agent.JSON(rpcRequest{
		JSONRPC: "2.0",
		Method:  "call",
		Params:  params,
		ID:      uuid.NewString(),
	})
	if timeout > 0 {
		agent.Timeout(timeout)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("%w: request to %s: %w", ErrUnavailable, path, errors.Join(errs...))
	}
	if code >= fiber.StatusBadRequest {
		return fmt.Errorf("%w: request to %s returned status %d", ErrUnavailable, path, code)
	}

	var response rpcResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return fmt.Errorf("%w: response from %s is not JSON-RPC: %w", ErrUnavailable, path, err)
	}
	if response.Error != nil {
		msg := response.Error.Data.Message
		if msg == "" {
			msg = response.Error.Message
		}
		return &RejectedError{Message: messageOr(msg)}
	}
	if len(response.Result) == 0 {
		return &RejectedError{Message: unknownError}
	}
	if err := json.Unmarshal(response.Result, out); err != nil {
		return fmt.Errorf("erp result from %s: %w", path, err)
	}
	return nil
}

func messageOr(msg string) string {
	if msg == "" {
		return unknownError
	}
	return msg
}
