package models

type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeWarning
	NoticeError
)

// Notice is a blocking message shown to the user after a background operation
type Notice struct {
	Kind    NoticeKind
	Title   string
	Message string
}

func InfoNotice(title, message string) Notice {
	return Notice{Kind: NoticeInfo, Title: title, Message: message}
}

func WarningNotice(title, message string) Notice {
	return Notice{Kind: NoticeWarning, Title: title, Message: message}
}

func ErrorNotice(title, message string) Notice {
	return Notice{Kind: NoticeError, Title: title, Message: message}
}
