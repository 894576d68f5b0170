package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jhoicas/Cuentas-api/internal/domain"
	"github.com/jhoicas/Cuentas-api/pkg/metrics"
	"golang.org/x/text/unicode/norm"
)

// DefaultStoreTimeout se aplica cuando el caso de uso se construye con timeout <= 0.
const DefaultStoreTimeout = 5 * time.Second

func storeTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultStoreTimeout
	}
	return d
}

// storeCall acota fn con el timeout del almacén y registra su duración.
// Una llamada colgada del almacén termina con context.DeadlineExceeded en lugar de bloquear la petición.
func storeCall(ctx context.Context, timeout time.Duration, operation string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	err := fn(ctx)
	metrics.RecordStoreOperation(operation, time.Since(start), !isInfrastructureError(err))
	return err
}

// isInfrastructureError distingue fallos del almacén de los resultados esperados (validación, propiedad).
func isInfrastructureError(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, domain.ErrInvalidInput) &&
		!errors.Is(err, domain.ErrForbidden) &&
		!errors.Is(err, domain.ErrNotFound)
}

// normalizeText recorta espacios y normaliza a NFC para que "Café" escrito con
// o sin carácter combinado se guarde igual.
func normalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
