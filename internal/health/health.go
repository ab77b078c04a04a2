package health

import (
	"context"
	"sort"
	"time"
)

// Pinger - зависимость, доступность которой проверяется
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthChecker struct {
	components map[string]Pinger
	timeout    time.Duration
}

type HealthStatus struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

type ComponentHealth struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

func NewHealthChecker() *HealthChecker {
	return &HealthChecker{
		components: make(map[string]Pinger),
		timeout:    2 * time.Second,
	}
}

// Register добавляет компонент; nil игнорируется
func (h *HealthChecker) Register(name string, p Pinger) {
	if p != nil {
		h.components[name] = p
	}
}

// Check опрашивает все компоненты. Без компонентов сервис считается здоровым.
func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{Status: "healthy"}
	if len(h.components) == 0 {
		return status
	}

	names := make([]string, 0, len(h.components))
	for name := range h.components {
		names = append(names, name)
	}
	sort.Strings(names)

	status.Components = make(map[string]ComponentHealth, len(names))
	for _, name := range names {
		c := h.checkComponent(ctx, h.components[name])
		if c.Status != "healthy" {
			status.Status = "unhealthy"
		}
		status.Components[name] = c
	}
	return status
}

func (h *HealthChecker) checkComponent(ctx context.Context, p Pinger) ComponentHealth {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	start := time.Now()
	err := p.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	if err != nil {
		return ComponentHealth{Status: "unhealthy", ResponseTime: responseTime}
	}
	return ComponentHealth{Status: "healthy", ResponseTime: responseTime}
}
