package di

import (
	"fmt"

	"github.com/ca-srg/weekbound/domain"
	"github.com/ca-srg/weekbound/domain/repository"
	"github.com/ca-srg/weekbound/infrastructure/config"
	"github.com/ca-srg/weekbound/infrastructure/logging"
	"github.com/ca-srg/weekbound/infrastructure/service"
	"github.com/ca-srg/weekbound/interface/cli"
	"github.com/ca-srg/weekbound/interface/presenter"
	"github.com/ca-srg/weekbound/usecase/impl"
	usecase "github.com/ca-srg/weekbound/usecase/interface"
)

// Container is the dependency injection container
type Container struct {
	// Configuration
	config *config.AppConfig

	// Services
	timezoneService repository.TimezoneService

	// Use Cases
	windowService usecase.WindowService

	// Presenters
	consolePresenter presenter.ConsolePresenter
	jsonPresenter    presenter.JSONPresenter

	// Controllers
	cliController *cli.CLIController

	// Logging
	loggerFactory domain.LoggerFactory
	logger        domain.Logger

	// Options
	debugMode bool
}

// ContainerOption is a function that configures the container
type ContainerOption func(*Container)

// WithDebugMode sets the debug mode
func WithDebugMode(debug bool) ContainerOption {
	return func(c *Container) {
		c.debugMode = debug
	}
}

// WithConfig sets a custom configuration, skipping environment loading
func WithConfig(cfg *config.AppConfig) ContainerOption {
	return func(c *Container) {
		c.config = cfg
	}
}

// NewContainer creates a new DI container
func NewContainer(opts ...ContainerOption) (*Container, error) {
	container := &Container{}

	// Apply options
	for _, opt := range opts {
		opt(container)
	}

	// Load configuration
	if err := container.initConfig(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logging
	if err := container.initLogging(); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Initialize domain services
	if err := container.initDomainServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize domain services: %w", err)
	}

	// Initialize use cases
	if err := container.initUseCases(); err != nil {
		return nil, fmt.Errorf("failed to initialize use cases: %w", err)
	}

	// Initialize presenters
	if err := container.initPresenters(); err != nil {
		return nil, fmt.Errorf("failed to initialize presenters: %w", err)
	}

	// Initialize controllers
	if err := container.initControllers(); err != nil {
		return nil, fmt.Errorf("failed to initialize controllers: %w", err)
	}

	return container, nil
}

// initConfig initializes configuration
func (c *Container) initConfig() error {
	if c.config == nil {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		c.config = cfg
	}

	// Override debug mode if set via command line
	if c.debugMode {
		if c.config.Logging == nil {
			c.config.Logging = &config.LoggingConfig{
				Level: "debug",
				Debug: true,
			}
		} else {
			c.config.Logging.Debug = true
		}
	}

	return nil
}

// initLogging initializes logging components
func (c *Container) initLogging() error {
	// Ensure logging configuration exists
	if c.config.Logging == nil {
		c.config.Logging = DefaultLoggingConfig()
	}

	// Create logger factory
	c.loggerFactory = logging.NewLoggerFactory(c.config.Logging)

	// Create main logger for the container
	c.logger = c.loggerFactory.CreateLogger("weekbound")

	return nil
}

// initDomainServices initializes domain services
func (c *Container) initDomainServices() error {
	c.timezoneService = service.NewTimezoneServiceImpl(c.config, c.CreateLogger("timezone"))
	return nil
}

// initUseCases initializes use case implementations
func (c *Container) initUseCases() error {
	c.windowService = impl.NewWindowServiceImpl(c.timezoneService, c.CreateLogger("window"))
	return nil
}

// initPresenters initializes presenter implementations
func (c *Container) initPresenters() error {
	c.consolePresenter = presenter.NewConsolePresenter()
	c.jsonPresenter = presenter.NewJSONPresenter()
	return nil
}

// initControllers initializes controller implementations
func (c *Container) initControllers() error {
	c.cliController = newCLIController(
		c.windowService,
		c.consolePresenter,
		c.jsonPresenter,
	)
	return nil
}

// DefaultLoggingConfig returns the logging configuration used when none
// is supplied
func DefaultLoggingConfig() *config.LoggingConfig {
	return &config.LoggingConfig{
		Level: "info",
		Debug: false,
	}
}

// GetConfig returns the application configuration
func (c *Container) GetConfig() *config.AppConfig {
	return c.config
}

// GetTimezoneService returns the timezone service
func (c *Container) GetTimezoneService() repository.TimezoneService {
	return c.timezoneService
}

// GetWindowService returns the window service
func (c *Container) GetWindowService() usecase.WindowService {
	return c.windowService
}

// GetConsolePresenter returns the console presenter
func (c *Container) GetConsolePresenter() presenter.ConsolePresenter {
	return c.consolePresenter
}

// GetJSONPresenter returns the JSON presenter
func (c *Container) GetJSONPresenter() presenter.JSONPresenter {
	return c.jsonPresenter
}

// GetCLIController returns the CLI controller
func (c *Container) GetCLIController() *cli.CLIController {
	return c.cliController
}

// GetLoggerFactory returns the logger factory
func (c *Container) GetLoggerFactory() domain.LoggerFactory {
	return c.loggerFactory
}

// GetLogger returns the main logger
func (c *Container) GetLogger() domain.Logger {
	return c.logger
}

// CreateLogger creates a new logger for a specific component
func (c *Container) CreateLogger(component string) domain.Logger {
	if c.loggerFactory == nil {
		return &logging.NoOpLogger{}
	}
	return c.loggerFactory.CreateLogger(component)
}

// Shutdown flushes and closes logging resources
func (c *Container) Shutdown() error {
	type shutdowner interface {
		Shutdown() error
	}
	if s, ok := c.logger.(shutdowner); ok {
		return s.Shutdown()
	}
	return nil
}
