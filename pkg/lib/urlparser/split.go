package urlparser

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrInvalidId       = errors.New("invalid id, must be a positive int")
	ErrInvalidUsername = errors.New("invalid username")
)

func ParseId(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, ErrInvalidId
	}
	return id, nil
}

func ParseUsername(raw string) (string, error) {
	username := strings.TrimSpace(raw)
	if username == "" || strings.ContainsAny(username, "/ \t\n") {
		return "", ErrInvalidUsername
	}
	return username, nil
}
