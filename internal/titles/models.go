package titles

// Title is one persisted piece of generated copy.
// Rows are immutable once created; there is no update operation.
type Title struct {
	ID        int64  `json:"id"`
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`
	UserID    string `json:"user_id"`
}

// CreateTitleRequest is the body of POST /titles.
type CreateTitleRequest struct {
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`
	UserID    string `json:"user_id"`
}
