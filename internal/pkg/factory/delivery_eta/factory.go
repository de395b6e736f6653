package delivery_eta

import "time"

const defaultHandlingAllowance = time.Hour

// DeliveryTimeFactory считает обещанное время доставки как
// baseTime + операционный зазор на сборку и передачу агенту.
type DeliveryTimeFactory struct {
	handlingAllowance time.Duration
}

func New(handlingAllowance time.Duration) *DeliveryTimeFactory {
	if handlingAllowance <= 0 {
		handlingAllowance = defaultHandlingAllowance
	}
	return &DeliveryTimeFactory{handlingAllowance: handlingAllowance}
}

func (d *DeliveryTimeFactory) EstimateDeliveryTime(baseTime time.Time) time.Time {
	return baseTime.Add(d.handlingAllowance)
}
