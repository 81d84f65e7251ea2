package dto

// FieldError is one field-level validation failure.
type FieldError struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

// APIErrorResult is the 400 envelope for validation failures.
type APIErrorResult struct {
	ErrorsMessages []FieldError `json:"errorsMessages"`
}

// ErrorResponse is the generic non-validation error body.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// HealthResponse reports process and database liveness.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

// PageQuery carries normalized pagination parameters. SortBy is only
// ever one of a handler-approved column list, never raw query input.
type PageQuery struct {
	PageNumber int
	PageSize   int
	SortBy     string
	SortDesc   bool
}

func (q PageQuery) Offset() int {
	return (q.PageNumber - 1) * q.PageSize
}

func (q PageQuery) Order() string {
	if q.SortDesc {
		return q.SortBy + " DESC"
	}
	return q.SortBy + " ASC"
}

// Page is the envelope every paginated list endpoint returns.
type Page struct {
	PagesCount int         `json:"pagesCount"`
	PageNumber int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalCount int64       `json:"totalCount"`
	Items      interface{} `json:"items"`
}

// NewPage computes pagesCount from the total; an empty result still
// reports one page, matching the platform's list contract.
func NewPage(items interface{}, totalCount int64, pageNumber, pageSize int) Page {
	pagesCount := int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	if pagesCount == 0 {
		pagesCount = 1
	}
	return Page{
		PagesCount: pagesCount,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalCount: totalCount,
		Items:      items,
	}
}
