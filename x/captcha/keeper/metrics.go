package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CaptchaMetrics holds all Prometheus metrics for the captcha module
type CaptchaMetrics struct {
	// Provider metrics
	ProvidersRegistered   prometheus.Counter
	ProvidersDeregistered prometheus.Counter
	ProvidersActive       prometheus.Gauge
	ProviderStake         *prometheus.GaugeVec

	// Dapp metrics
	DappsRegistered prometheus.Counter
	DappsCancelled  prometheus.Counter
	DappBalance     *prometheus.GaugeVec

	// Solution metrics
	SolutionsCommitted    prometheus.Counter
	SolutionsAdjudicated  *prometheus.CounterVec
	DatasetsAdded         prometheus.Counter
	FeesSettled           *prometheus.CounterVec
	RefundedContributions prometheus.Counter
}

var (
	captchaMetricsOnce sync.Once
	captchaMetrics     *CaptchaMetrics
)

// NewCaptchaMetrics creates and registers captcha metrics (singleton pattern)
func NewCaptchaMetrics() *CaptchaMetrics {
	captchaMetricsOnce.Do(func() {
		captchaMetrics = &CaptchaMetrics{
			ProvidersRegistered: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "protocol",
					Subsystem: "captcha",
					Name:      "providers_registered_total",
					Help:      "Total captcha providers registered",
				},
			),
			ProvidersDeregistered: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "protocol",
					Subsystem: "captcha",
					Name:      "providers_deregistered_total",
					Help:      "Total captcha providers deregistered",
				},
			),
			ProvidersActive: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "protocol",
					Subsystem: "captcha",
					Name:      "providers_active",
					Help:      "Currently active captcha providers",
				},
			),
			ProviderStake: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "protocol",
					Subsystem: "captcha",
					Name:      "provider_stake",
					Help:      "Provider stake amount",
				},
				[]string{"provider", "denom"},
			),
			DappsRegistered: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "protocol",
					Subsystem: "captcha",
					Name:      "dapps_registered_total",
					Help:      "Total dapps registered",
				},
			),
			DappsCancelled: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "protocol",
					Subsystem: "captcha",
					Name:      "dapps_cancelled_total",
					Help:      "Total dapps cancelled",
				},
			),
			DappBalance: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "protocol",
					Subsystem: "captcha",
					Name:      "dapp_balance",
					Help:      "Dapp reward balance",
				},
				[]string{"contract", "denom"},
			),
			SolutionsCommitted: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "protocol",
					Subsystem: "captcha",
					Name:      "solutions_committed_total",
					Help:      "Total solution commitments submitted",
				},
			),
			SolutionsAdjudicated: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "protocol",
					Subsystem: "captcha",
					Name:      "solutions_adjudicated_total",
					Help:      "Total solution commitments adjudicated",
				},
				[]string{"verdict"},
			),
			DatasetsAdded: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "protocol",
					Subsystem: "captcha",
					Name:      "datasets_added_total",
					Help:      "Total captcha datasets registered",
				},
			),
			FeesSettled: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "protocol",
					Subsystem: "captcha",
					Name:      "fees_settled_total",
					Help:      "Total captcha fees settled",
				},
				[]string{"payee"},
			),
			RefundedContributions: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "protocol",
					Subsystem: "captcha",
					Name:      "refunded_contributions_total",
					Help:      "Attached amounts refunded without effect",
				},
			),
		}
	})
	return captchaMetrics
}

// GetCaptchaMetrics returns the singleton captcha metrics instance
func GetCaptchaMetrics() *CaptchaMetrics {
	if captchaMetrics == nil {
		return NewCaptchaMetrics()
	}
	return captchaMetrics
}
