// Package config provides user-level settings for the lathe CLI and server.
//
// Settings are stored in config.json under the lathe home directory,
// which is ~/.lathe by default and can be overridden with the LATHE_HOME
// environment variable. This package handles loading, saving, and merging
// configuration.
//
// # Configuration File Structure
//
//	{
//	  "defaultAuthor": "Ada Lovelace",
//	  "defaultFramework": "react",
//	  "defaultPackageManager": "npm",
//	  "templatesDir": "/home/ada/.lathe/templates",
//	  "logLevel": "info",
//	  "editor": "vim",
//	  "colorOutput": true
//	}
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.TemplatesRoot())
//
// Loading never fails when the file is absent: defaults are returned and
// written back, so a fresh install starts from a saved baseline.
package config
