package service

import "github.com/prometheus/client_golang/prometheus"

var (
	stockMovements = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "inventory_stock_movements_total", Help: "Committed stock movements"},
		[]string{"action"},
	)
	stockMovementUnits = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "inventory_stock_movement_units_total", Help: "Units moved by committed stock movements"},
		[]string{"action"},
	)
	stockRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "inventory_stock_rejections_total", Help: "Stock mutations rejected by business rules"},
		[]string{"reason"},
	)
)

func init() { prometheus.MustRegister(stockMovements, stockMovementUnits, stockRejections) }
