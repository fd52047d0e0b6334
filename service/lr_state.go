package service

import (
	"context"
	"time"

	"freightdesk/apperr"
	"freightdesk/models"
)

type lrEvent string

const (
	eventDispatch      lrEvent = "dispatch"
	eventUpdateTransit lrEvent = "update transit of"
	eventDeliver       lrEvent = "deliver"
	eventClose         lrEvent = "close"
)

// lrTransitions lists every legal (status, event) pair. Closed has no
// outgoing edges.
var lrTransitions = map[models.LRStatus]map[lrEvent]models.LRStatus{
	models.LRBooked:     {eventDispatch: models.LRDispatched},
	models.LRDispatched: {eventUpdateTransit: models.LRInTransit},
	models.LRInTransit: {
		eventUpdateTransit: models.LRInTransit,
		eventDeliver:       models.LRDelivered,
	},
	models.LRDelivered: {eventClose: models.LRClosed},
}

func nextStatus(from models.LRStatus, ev lrEvent) (models.LRStatus, error) {
	// receipts stored before tracking existed have no status yet
	if from == "" {
		from = models.LRBooked
	}
	if to, ok := lrTransitions[from][ev]; ok {
		return to, nil
	}
	return "", apperr.InvalidTransition(string(from), string(ev))
}

// Dispatch assigns the vehicle and driver and moves a Booked LR to Dispatched.
func (s *LorryReceiptStore) Dispatch(ctx context.Context, id, vehicleNumber, driverName string) (*models.LorryReceipt, error) {
	if blank(vehicleNumber) {
		return nil, apperr.Validation("vehicle_number", "vehicle number is required")
	}
	if blank(driverName) {
		return nil, apperr.Validation("driver_name", "driver name is required")
	}
	return s.transition(ctx, id, eventDispatch, func(lr *models.LorryReceipt, at time.Time) {
		setDispatch(lr, vehicleNumber, driverName, at)
	})
}

// UpdateTransit records the current location of a Dispatched or In Transit LR.
func (s *LorryReceiptStore) UpdateTransit(ctx context.Context, id, location string) (*models.LorryReceipt, error) {
	if blank(location) {
		return nil, apperr.Validation("location", "location is required")
	}
	return s.transition(ctx, id, eventUpdateTransit, func(lr *models.LorryReceipt, at time.Time) {
		appendTransitUpdate(lr, location, at)
	})
}

func (s *LorryReceiptStore) Deliver(ctx context.Context, id, proofOfDelivery string) (*models.LorryReceipt, error) {
	if blank(proofOfDelivery) {
		return nil, apperr.Validation("proof_of_delivery", "proof of delivery is required")
	}
	return s.transition(ctx, id, eventDeliver, func(lr *models.LorryReceipt, at time.Time) {
		setDelivery(lr, proofOfDelivery, at)
	})
}

// Close finalises a Delivered LR. A Closed LR accepts no further changes.
func (s *LorryReceiptStore) Close(ctx context.Context, id string) (*models.LorryReceipt, error) {
	return s.transition(ctx, id, eventClose, setClosed)
}

func (s *LorryReceiptStore) transition(ctx context.Context, id string, ev lrEvent, apply func(*models.LorryReceipt, time.Time)) (*models.LorryReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lr, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	to, err := nextStatus(lr.Status, ev)
	if err != nil {
		return nil, err
	}

	apply(lr, s.now())
	lr.Status = to
	if err := s.save(ctx, lr); err != nil {
		return nil, err
	}
	s.log.Info().Str("lr_id", lr.ID).Str("status", string(to)).Msg("lorry receipt status changed")
	return lr, nil
}

func setDispatch(lr *models.LorryReceipt, vehicleNumber, driverName string, at time.Time) {
	lr.VehicleNumber = vehicleNumber
	lr.DriverName = driverName
	lr.DispatchTime = &at
}

func appendTransitUpdate(lr *models.LorryReceipt, location string, at time.Time) {
	lr.CurrentLocation = location
	lr.TransitUpdates = append(lr.TransitUpdates, models.TransitUpdate{Location: location, Timestamp: at})
}

func setDelivery(lr *models.LorryReceipt, proofOfDelivery string, at time.Time) {
	lr.ProofOfDelivery = proofOfDelivery
	lr.DeliveryTime = &at
}

func setClosed(lr *models.LorryReceipt, at time.Time) {
	lr.ClosureTime = &at
}
