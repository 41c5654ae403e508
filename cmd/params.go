package cmd

var (
	workDir      string
	repoURL      string
	debugMode    bool
	targetLang   string
	longHash     bool
	showCommands bool
	onlyCommands bool
	showDoc      string
	backend      string
	workers      int
	matchPattern string
	rendererType string
	showProgress bool

	showAllConfigs bool
)
