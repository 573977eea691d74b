// Package notify entrega al usuario las confirmaciones y errores que en el
// panel original aparecían como notificaciones transitorias. Cada operación
// mutadora de un store reporta exactamente un resultado por aquí.
package notify

import (
	"sync"

	"github.com/tu-usuario/admin-revendedores/pkg/logger"
)

// Notifier receptor de notificaciones de cara al usuario.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// logNotifier implementación por defecto sobre el logger estructurado.
type logNotifier struct {
	log *logger.Logger
}

// NewLog construye un Notifier que escribe en el logger.
func NewLog(l *logger.Logger) Notifier {
	return &logNotifier{log: l}
}

func (n *logNotifier) Success(msg string) {
	n.log.Info().Str("tipo", "éxito").Msg(msg)
}

func (n *logNotifier) Error(msg string) {
	n.log.Warn().Str("tipo", "error").Msg(msg)
}

// Recorder acumula las notificaciones emitidas; se usa en tests y en la CLI
// para volcarlas al final del comando.
type Recorder struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
}

func (r *Recorder) Success(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Successes = append(r.Successes, msg)
}

func (r *Recorder) Error(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, msg)
}

// Count devuelve el total de notificaciones registradas.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Successes) + len(r.Errors)
}
