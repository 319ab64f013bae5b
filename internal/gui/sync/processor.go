package sync

import (
	"winget-installer/internal/models"
)

type StatusBarHandler interface {
	SetStatus(string)
}

type ResultsHandler interface {
	SetSearchResults(string)
}

type NoticeHandler interface {
	ShowNotice(models.Notice)
}

type UpdateProcessor struct {
	statusBar StatusBarHandler
	results   ResultsHandler
	notices   NoticeHandler
}

func NewUpdateProcessor() *UpdateProcessor {
	return &UpdateProcessor{}
}

func (p *UpdateProcessor) SetStatusBar(statusBar StatusBarHandler) {
	p.statusBar = statusBar
}

func (p *UpdateProcessor) SetResultsPanel(panel ResultsHandler) {
	p.results = panel
}

func (p *UpdateProcessor) SetNoticeHandler(handler NoticeHandler) {
	p.notices = handler
}

func (p *UpdateProcessor) ProcessUpdate(update *Update) {
	switch update.Type {
	case UpdateTypeStatus:
		if p.statusBar != nil {
			if status, ok := update.Data.(string); ok {
				p.statusBar.SetStatus(status)
			}
		}

	case UpdateTypeSearchResults:
		if p.results != nil {
			if text, ok := update.Data.(string); ok {
				p.results.SetSearchResults(text)
			}
		}

	case UpdateTypeNotice:
		if p.notices != nil {
			if notice, ok := update.Data.(models.Notice); ok {
				p.notices.ShowNotice(notice)
			}
		}
	}
}
