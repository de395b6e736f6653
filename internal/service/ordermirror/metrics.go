package ordermirror

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var MirrorSyncTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "order_mirror_sync_total",
		Help: "Total number of order status mirror attempts by result",
	},
	[]string{"result"},
)
