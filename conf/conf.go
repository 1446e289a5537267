package conf

import (
	"errors"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

const DefaultPath = "conf/config.ini"

// 读取配置文件，文件不存在时返回空配置，由各模块使用默认值
func Load(path string) (*ini.File, error) {
	file, err := ini.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.WithField("path", path).Warn("配置文件不存在，使用默认配置")
			return ini.Empty(), nil
		}
		return nil, err
	}
	return file, nil
}

// 按 [log] 段设置日志级别和格式
func SetupLogging(file *ini.File) {
	section := file.Section("log")
	level, err := log.ParseLevel(section.Key("Level").MustString("info"))
	if err != nil {
		log.WithError(err).Warn("日志级别配置错误")
		level = log.InfoLevel
	}
	log.SetLevel(level)
	if section.Key("JSON").MustBool(false) {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
