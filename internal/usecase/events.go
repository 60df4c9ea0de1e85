package usecase

import (
	"context"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/events"

	"go.uber.org/zap"
)

const publishTimeout = 2 * time.Second

// publish sends ev after the write committed. Failures are logged only.
func publish(ctx context.Context, pub events.Publisher, log *zap.Logger, ev events.Event) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := pub.Publish(ctx, ev); err != nil {
		log.Warn("Event not published",
			zap.Error(err),
			zap.String("type", string(ev.Type)),
		)
	}
}

func bookingEvent(t events.Type, b *entity.Booking) events.Event {
	ev := events.New(t)
	id := b.ID
	active := b.Active
	ev.BookingID = &id
	ev.RoomID = b.RoomID
	ev.UserID = b.UserID
	ev.Checkin = b.Checkin.String()
	ev.Checkout = b.Checkout.String()
	ev.Active = &active
	return ev
}
