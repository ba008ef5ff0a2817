// Package application 组合配置与日志器，提供单次执行的生命周期。
package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lwmacct/251218-go-app-boot/pkg/cfgm"
)

// ErrAlreadyRunning Run 被重复调用。
var ErrAlreadyRunning = errors.New("application already running")

// State 生命周期状态。
type State int

const (
	// StateInitialized 已构造，尚未执行。
	StateInitialized State = iota
	// StateRunning 已进入执行 (终态，无论成功或失败)。
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Logger Application 使用的日志接口，*logging.Logger 满足该接口。
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warning(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Critical(msg string, fields ...zap.Field)
}

// Processor 处理步骤的扩展点。
type Processor interface {
	Process(ctx context.Context, app *Application) error
}

// ProcessorFunc 函数适配器。
type ProcessorFunc func(ctx context.Context, app *Application) error

// Process 调用 f。
func (f ProcessorFunc) Process(ctx context.Context, app *Application) error {
	return f(ctx, app)
}

// Application 应用主体。
type Application struct {
	id        uuid.UUID
	config    *cfgm.Store
	logger    Logger
	processor Processor
	state     State
}

// Option Application 选项函数。
type Option func(*Application)

// WithProcessor 替换默认的处理步骤。
func WithProcessor(p Processor) Option {
	return func(a *Application) {
		a.processor = p
	}
}

// New 创建 Application。config 与 logger 由调用方构造并注入。
func New(config *cfgm.Store, logger Logger, opts ...Option) *Application {
	a := &Application{
		id:        uuid.New(),
		config:    config,
		logger:    logger,
		processor: ProcessorFunc(defaultProcess),
		state:     StateInitialized,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.logger.Info("application initialized", zap.Stringer("run_id", a.id))

	return a
}

// Run 执行处理步骤。处理失败时以 ERROR 级别记录并原样返回错误。
func (a *Application) Run(ctx context.Context) error {
	if a.state == StateRunning {
		return ErrAlreadyRunning
	}
	a.state = StateRunning

	a.logger.Info("application running", zap.Stringer("run_id", a.id))
	if err := a.processor.Process(ctx, a); err != nil {
		a.logger.Error("application run failed", zap.Stringer("run_id", a.id), zap.Error(err))

		return err
	}
	a.logger.Info("application run completed", zap.Stringer("run_id", a.id))

	return nil
}

// ID 返回本次运行的标识。
func (a *Application) ID() uuid.UUID { return a.id }

// Config 返回配置容器。
func (a *Application) Config() *cfgm.Store { return a.config }

// Logger 返回日志器。
func (a *Application) Logger() Logger { return a.logger }

// State 返回当前状态。
func (a *Application) State() State { return a.state }

func defaultProcess(_ context.Context, app *Application) error {
	app.logger.Info("processing")

	return nil
}
