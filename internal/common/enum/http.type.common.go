package enum

type HTTPContentTypeEnum string

const (
	ApplicationJSON HTTPContentTypeEnum = "application/json"
	TextPlain       HTTPContentTypeEnum = "text/plain"
)

func (e HTTPContentTypeEnum) ToString() string {
	switch e {
	case ApplicationJSON:
		return "application/json"
	case TextPlain:
		return "text/plain"
	default:
		return ""
	}
}
