package dispatch

import "strings"

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidGeoCode(code string) bool {
	return strings.TrimSpace(code) != ""
}
