// Package config loads task board configuration with Viper.
//
// Configuration is read from config.yaml (or any format Viper supports) in the
// working directory, $HOME/.taskboard, /etc/taskboard or next to the
// executable. An explicit path can be set with SetPath or passed to
// LoadConfig. When no file is found built-in defaults apply.
//
// Example:
//
//	app_name: taskboard
//	run_mode: debug
//	logger:
//	  level: 5
//	  format: json
//	  output: stdout
//	observes:
//	  sentry:
//	    endpoint: https://key@sentry.example.com/1
//	board:
//	  default_task_hours: 8
//	  min_hours: 0.5
//	  week_starts_on: 1
//	  seed: true
//	  csv:
//	    quote_aware: false
//	    time_layout: yyyy-MM-dd HH:mm:ss
//	  export:
//	    dir: ./exports
//	    format: csv
//
// Watch reloads the file on change and hands the new Config to a callback.
package config
