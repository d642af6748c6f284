package tui

import (
	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/auth"
	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/news"
)

type loginResultMsg struct {
	session *auth.Session
	err     error
}

type registerResultMsg struct {
	err error
}

type loggedOutMsg struct{}

type errMsg struct {
	err error
}

type refreshDoneMsg struct {
	articles []news.Article
	count    int
	errs     []error
}

// toastExpiredMsg dismisses the toast only if no newer toast replaced it.
type toastExpiredMsg struct {
	seq int
}
