package utils

import (
	"strings"

	"VideoHub.com/config"
)

func GetMysqlDsn() string {
	// 生成数据库的dsn
	params := "?charset=" + config.ConfigInfo.Mysql.Charset + "&parseTime=True&loc=Local"
	if config.ConfigInfo.Mysql.Params != "" {
		params += "&" + config.ConfigInfo.Mysql.Params
	}
	return strings.Join([]string{config.ConfigInfo.Mysql.Username, ":",
		config.ConfigInfo.Mysql.Password, "@tcp(", config.ConfigInfo.Mysql.Addr, ")/",
		config.ConfigInfo.Mysql.Database, params}, "")
}
