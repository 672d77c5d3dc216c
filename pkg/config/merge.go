package config

// Merge merges source config into target, updating sources tracking. A
// value is applied when source.Sources lists its key or, for configs built
// without Sources, when it is non-zero.
func Merge(target, source *Config, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	set := func(key string, nonZero bool) bool {
		if source.Sources != nil {
			if _, ok := source.Sources[key]; !ok {
				return false
			}
		} else if !nonZero {
			return false
		}
		target.Sources[key] = sourceType
		return true
	}

	if set("endpoint", source.Endpoint != "") {
		target.Endpoint = source.Endpoint
	}
	if set("timeout", source.Timeout != 0) {
		target.Timeout = source.Timeout
	}
	if set("appVersion", source.AppVersion != "") {
		target.AppVersion = source.AppVersion
	}
	if set("server", source.Server != "") {
		target.Server = source.Server
	}
	if set("schoolCode", source.SchoolCode != "") {
		target.SchoolCode = source.SchoolCode
	}
	if set("schoolId", source.SchoolID != "") {
		target.SchoolID = source.SchoolID
	}
	if set("username", source.Username != "") {
		target.Username = source.Username
	}
	if set("password", source.Password != "") {
		target.Password = source.Password
	}
	if set("log.level", source.Log.Level != "") {
		target.Log.Level = source.Log.Level
	}
	if set("log.format", source.Log.Format != "") {
		target.Log.Format = source.Log.Format
	}
	if set("mock.port", source.Mock.Port != 0) {
		target.Mock.Port = source.Mock.Port
	}
	if set("mock.fixturesDir", source.Mock.FixturesDir != "") {
		target.Mock.FixturesDir = source.Mock.FixturesDir
	}
}
