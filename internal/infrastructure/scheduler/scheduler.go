// Package scheduler ejecuta tareas periódicas (refresco de recomendaciones del asesor).
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler maneja las tareas programadas.
type Scheduler struct {
	cron    *cron.Cron
	refresh func(ctx context.Context)
	timeout time.Duration
	log     zerolog.Logger
}

// New crea el scheduler. refresh se ejecuta con un contexto limitado a timeout.
// robfig/cron/v3 usa el parser estándar de 5 campos (min, hora, día, mes, día de semana).
func New(refresh func(ctx context.Context), timeout time.Duration, log zerolog.Logger) *Scheduler {
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &Scheduler{cron: cron.New(), refresh: refresh, timeout: timeout, log: log}
}

// Schedule registra el refresco con la expresión dada. Vacío no programa nada.
func (s *Scheduler) Schedule(spec string) error {
	if spec == "" {
		return nil
	}
	if _, err := s.cron.AddFunc(spec, s.runRefresh); err != nil {
		return fmt.Errorf("scheduler: expresión %q: %w", spec, err)
	}
	s.log.Info().Str("spec", spec).Msg("refresco de recomendaciones programado")
	return nil
}

// Start inicia el scheduler en segundo plano.
func (s *Scheduler) Start() {
	s.log.Info().Int("jobs", len(s.cron.Entries())).Msg("iniciando scheduler")
	s.cron.Start()
}

// Stop detiene el scheduler y espera a que termine la tarea en curso.
func (s *Scheduler) Stop() {
	s.log.Info().Msg("deteniendo scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	start := time.Now()
	s.refresh(ctx)
	s.log.Info().Dur("elapsed", time.Since(start)).Msg("refresco programado completado")
}
