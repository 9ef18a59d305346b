package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	urlRe   = regexp.MustCompile(`(?i)^https?://[^\s/$.?#].[^\s]*$`)
)

func validInt(v string) bool {
	_, err := strconv.ParseInt(v, 10, 64)
	return err == nil
}

func validFloat(v string) bool {
	_, err := strconv.ParseFloat(v, 64)
	return err == nil
}

func validBool(v string) bool {
	switch strings.ToLower(v) {
	case "true", "false", "1", "0":
		return true
	default:
		return false
	}
}

func validDate(v string) bool {
	_, err := time.Parse("2006-01-02", v)
	return err == nil
}

var typeValidators = map[string]func(string) bool{
	"int":    validInt,
	"float":  validFloat,
	"bool":   validBool,
	"email":  emailRe.MatchString,
	"url":    urlRe.MatchString,
	"date":   validDate,
	"string": func(string) bool { return true },
}
