package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EntryDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "logbook",
		Name:      "entry_decisions_total",
		Help:      "Approve and reject decisions applied to log entries.",
	}, []string{"source_table", "action"})

	LedgerWriteFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "logbook",
		Name:      "ledger_write_failures_total",
		Help:      "Report ledger writes that failed and were left to reconciliation.",
	}, []string{"operation"})

	LedgerReconciled = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "logbook",
		Name:      "ledger_reconciled_total",
		Help:      "Report rows created or removed by the reconciliation job.",
	}, []string{"source_table", "operation"})

	PasswordResetEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "logbook",
		Name:      "password_reset_events_total",
		Help:      "Password reset lifecycle events.",
	}, []string{"event"})

	StatusChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "logbook",
		Name:      "equipment_status_changes_total",
		Help:      "Equipment status deviations from the day's baseline.",
	}, []string{"field"})

	OutboxPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "logbook",
		Name:      "outbox_events_total",
		Help:      "Outbox events handled by the publisher.",
	}, []string{"result"})
)

var AuthEvents = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "logbook",
	Name:      "auth_events_total",
	Help:      "Login, refresh and session revocation outcomes.",
}, []string{"event"})
