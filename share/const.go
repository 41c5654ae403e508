package share

import "time"

// VERSION 版本号
const VERSION = "0.2.0"

// BUILDNAME 制品名称
const BUILDNAME = "tdoc"

const PREFIX = "TDOC_"

const PATH = ".tdoc"

const TIMEOUT = time.Second * 60 * 5

const DEFAULT_RENDERER = "text"

const DEFAULT_THEME = "mocha"

const DEFAULT_REPO_URL = "https://github.com/Pandorym/appium.git"

const DEFAULT_REPO_DIR = "appium"

const DEFAULT_DOC_DIR = "docs"

const DEFAULT_BRANCH = "master"

const ORIGIN_LANG = "en"

const TARGET_LANG = "cn"

// COMMANDS_SECTION 默认隐藏的命令文档章节
const COMMANDS_SECTION = "Commands"

// HOME_ENTRY 永远不参与统计的首页条目
const HOME_ENTRY = "Home"

// TRAILER_PREFIX 译文末尾记录英文版本的标记行前缀
const TRAILER_PREFIX = "Last english version: "

// SHORT_HASH 默认显示的提交哈希长度
const SHORT_HASH = 8
