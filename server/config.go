package server

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

var srvCfg Config

type Config struct {
	Addr                  string
	DefaultAtmospherePsia float64
}

func init() {
	file, err := ini.Load("conf/config.ini")
	if err != nil {
		log.WithError(err).Warn("config file not readable, using defaults")
		srvCfg = Config{Addr: ":9000", DefaultAtmospherePsia: 14.7}
		return
	}
	loadCfg(file)
}

func loadCfg(file *ini.File) {
	srvCfg = Config{
		Addr:                  file.Section("server").Key("Addr").MustString(":9000"),
		DefaultAtmospherePsia: file.Section("server").Key("DefaultAtmospherePsia").MustFloat64(14.7),
	}
}
