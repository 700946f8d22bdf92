package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"
)
