package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"hotel-booking/pkg/apperror"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError writes err with the status of its apperror kind.
// Unclassified errors are logged and hidden behind a generic 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	appErr, ok := apperror.As(err)
	if !ok || appErr.HTTPStatus() >= http.StatusInternalServerError {
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	log.Warn(operation+" failed",
		zap.Error(err),
		zap.String("operation", operation),
		zap.Stringer("kind", appErr.Kind))

	var fields any
	if len(appErr.Fields) > 0 {
		fields = appErr.Fields
	}
	utils.ResponseJSON(w, appErr.HTTPStatus(), false, appErr.Message, nil, fields)
}

// decodeJSON reads the request body into dst. An empty body leaves dst
// untouched.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
