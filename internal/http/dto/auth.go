package dto

// Request
type (
	CredentialsRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
)

// Response
type (
	RegisterResponse struct {
		ID int64 `json:"id"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}

	MessageResponse struct {
		Message string `json:"message"`
	}

	ErrorResponse struct {
		Error string `json:"error"`
	}
)
