package quote

import (
	"time"

	"goldconv/internal/domain"

	"github.com/google/uuid"
)

type View struct {
	SessionID uuid.UUID
	State     State
	Date      time.Time
	Currency  string
	Quote     *domain.PriceQuote
	Result    *domain.ConversionResult
	Error     string
}

func newView(id uuid.UUID, snap Snapshot) View {
	v := View{
		SessionID: id,
		State:     snap.State,
		Date:      snap.Date,
		Currency:  snap.Currency,
		Quote:     snap.Quote,
		Result:    snap.Result,
	}
	if snap.Err != nil {
		v.Error = snap.Err.Error()
	}
	return v
}
