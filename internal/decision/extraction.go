package decision

// #region imports
import (
	"errors"
)

// #endregion

// #region errors

// ErrSuccessWithoutData signals a successful extraction with no data,
// which violates the extraction contract.
var ErrSuccessWithoutData = errors.New("extraction marked successful but data is nil")

// #endregion errors

// #region extraction

// Extraction is the outcome of pulling structured data out of free text.
// IsSuccess implies Data is non-nil; the constructor enforces this.
type Extraction[T any] struct {
	IsSuccess     bool     `json:"is_success"`
	Data          *T       `json:"data,omitempty"`
	MissingFields []string `json:"missing_fields,omitempty"`
	ErrorMessage  string   `json:"error_message,omitempty"`
}

// NewExtraction validates the success/data invariant at construction.
func NewExtraction[T any](isSuccess bool, data *T, missingFields []string, errorMessage string) (Extraction[T], error) {
	if isSuccess && data == nil {
		return Extraction[T]{}, ErrSuccessWithoutData
	}
	return Extraction[T]{
		IsSuccess:     isSuccess,
		Data:          data,
		MissingFields: missingFields,
		ErrorMessage:  errorMessage,
	}, nil
}

// ExtractionSuccess wraps extracted data in a successful result.
func ExtractionSuccess[T any](data T) Extraction[T] {
	return Extraction[T]{IsSuccess: true, Data: &data}
}

// ExtractionFailure builds a failed result naming the fields that could
// not be determined. Data stays nil.
func ExtractionFailure[T any](missingFields []string, errorMessage string) Extraction[T] {
	return Extraction[T]{
		IsSuccess:     false,
		MissingFields: missingFields,
		ErrorMessage:  errorMessage,
	}
}

// #endregion extraction
