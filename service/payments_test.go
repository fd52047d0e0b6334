package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightdesk/apperr"
	"freightdesk/models"
)

func TestRecordPayment(t *testing.T) {
	f := newFixture(t)
	f.addClient(t, "c1", "Acme Traders")
	s := NewPaymentService(f.payments, f.clients, zerolog.Nop())
	s.now, s.newID = f.clock, f.nextID
	ctx := context.Background()
	valid := func() *models.Payment {
		return &models.Payment{ClientID: "c1", Amount: dec("500"), Mode: models.ModeCash, Date: models.NewDate(2025, 9, 1)}
	}

	p, err := s.Record(ctx, valid())
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)

	zero := valid()
	zero.Amount = dec("0")
	_, err = s.Record(ctx, zero)
	assert.Equal(t, "amount", apperr.FieldOf(err))

	badMode := valid()
	badMode.Mode = "Cheque"
	_, err = s.Record(ctx, badMode)
	assert.Equal(t, "mode", apperr.FieldOf(err))

	ghost := valid()
	ghost.ClientID = "ghost"
	_, err = s.Record(ctx, ghost)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	old := valid()
	old.Date = models.NewDate(2024, 12, 1)
	_, err = s.Record(ctx, old)
	require.NoError(t, err)

	fy := FinancialYear{StartYear: 2025}
	got, err := s.List(ctx, PaymentFilter{ClientID: "c1", FinancialYear: &fy})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
