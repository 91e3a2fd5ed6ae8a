package code

import httpPKG "net/http"

type SuccessCode struct {
	HTTPCode int
}

type withSuccessCode interface {
	SuccessCode() SuccessCode
}

func ParseResponseSuccessCode(res interface{}) *SuccessCode {
	switch successCode := res.(type) {
	case SuccessCode:
		return &successCode
	case withSuccessCode:
		code := successCode.SuccessCode()
		return &code
	case nil:
		return &SuccessCode{HTTPCode: httpPKG.StatusNoContent}
	}
	return &SuccessCode{HTTPCode: httpPKG.StatusOK}
}
