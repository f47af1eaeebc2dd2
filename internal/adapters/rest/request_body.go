package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"mobile-api-service/internal/contracts"
)

// decodeValidatedBody читает тело запроса, проверяет его по JSON-схеме
// и только затем разбирает в DTO. Семантические проверки (диапазоны,
// обязательность в зависимости от типа партнера) остаются за use case.
func decodeValidatedBody(r *http.Request, schemaKey string, dst interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}

	if err := contracts.ValidateRequest(schemaKey, body); err != nil {
		return err
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("failed to unmarshal request body: %w", err)
	}

	return nil
}
