// Package config provides configuration parsing for fieldset projects.
//
// The configuration is stored in fieldset.json at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "formats": {
//	    "date": ["yyyy-MM-dd", "dd.MM.yyyy"],
//	    "time": ["HH:mm:ss", "HH:mm"],
//	    "datetime": ["yyyy-MM-dd HH:mm:ss"]
//	  },
//	  "locale": {
//	    "name": "de",
//	    "months": ["Januar", "Februar", "..."],
//	    "monthsAbbr": ["Jan", "Feb", "..."],
//	    "am": "vorm.",
//	    "pm": "nachm."
//	  },
//	  "serve": {
//	    "port": 8080,
//	    "host": "localhost",
//	    "metricsNamespace": "fieldset",
//	    "upload": {
//	      "dir": ".fieldset/uploads",
//	      "maxSize": 33554432,
//	      "ttl": "1h"
//	    }
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Port:", cfg.Serve.Port)
package config
