package services

import (
	"Packlist/internal/config"
	"fmt"
	"github.com/sirupsen/logrus"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type LogService struct {
	Log *logrus.Logger
}

func NewLogService(configuration *config.Configuration) LogService {
	log := logrus.New()
	setLogOutputType(configuration, log)
	setLogLevel(configuration, log)
	setLogFormatter(configuration, log)
	return LogService{
		Log: log,
	}
}

func setLogFormatter(configuration *config.Configuration, log *logrus.Logger) {
	switch configuration.Server.LogConfig.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func setLogLevel(configuration *config.Configuration, log *logrus.Logger) {
	level, err := logrus.ParseLevel(strings.ToLower(configuration.Server.LogConfig.Level))
	if err != nil {
		log.SetLevel(logrus.InfoLevel)
		return
	}
	log.SetLevel(level)
}

func setLogOutputType(configuration *config.Configuration, log *logrus.Logger) {
	switch configuration.Server.LogConfig.Output {
	case "stdout":
		log.SetOutput(os.Stdout)
	case "file":
		if configuration.Server.LogConfig.LogPath == "" {
			log.Error("file output requires logPath to be set, logging to stderr")
			return
		}
		logFolder := strings.TrimRight(configuration.Server.LogConfig.LogPath, "/")
		if err := os.MkdirAll(logFolder, 0o755); err != nil {
			log.Fatal(err)
		}
		logName := fmt.Sprintf("%s-%s.log", "packlist", time.Now().Format("2006-01-02"))
		file, err := os.OpenFile(filepath.Join(logFolder, logName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			log.Fatal(err)
		}
		log.Out = file
	}
}
