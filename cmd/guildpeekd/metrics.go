package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var inviteLookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "guildpeekd_invite_lookups",
	Help: "Invite lookups served, by outcome",
}, []string{"status"})
