package models

// ParseAuthResponse validates `{"token": "..."}`, the success body of every
// credential-issuing route. Other fields (login also returns "id") are
// ignored.
func ParseAuthResponse(data []byte) (string, error) {
	obj, err := object(data)
	if err != nil {
		return "", err
	}
	return stringField(obj, "token")
}
