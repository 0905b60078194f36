package registry

// defaultStdlibModules lists the commonly used modules shipped with the
// Python 3.13 distribution. It seeds the stdlib set of every new Registry
// and is restored by ResetStdlibToDefaults.
var defaultStdlibModules = []string{
	"os",
	"sys",
	"json",
	"re",
	"datetime",
	"time",
	"collections",
	"collections.abc",
	"itertools",
	"functools",
	"operator",
	"typing",
	"pathlib",
	"logging",
	"uuid",
	"hashlib",
	"base64",
	"urllib",
	"http",
	"email",
	"html",
	"xml",
	"sqlite3",
	"csv",
	"io",
	"tempfile",
	"shutil",
	"glob",
	"fnmatch",
	"linecache",
	"pickle",
	"copy",
	"math",
	"random",
	"statistics",
	"decimal",
	"fractions",
	"contextlib",
	"abc",
	"atexit",
	"traceback",
	"gc",
	"weakref",
	"enum",
	"dataclasses",
	"concurrent",
	"asyncio",
	"threading",
	"multiprocessing",
	"subprocess",
	"socket",
	"select",
	"ssl",
	"ipaddress",
	"argparse",
	"configparser",
	"getpass",
	"locale",
	"platform",
	"sysconfig",
	"types",
	"warnings",
}

// defaultThirdPartyPackages is a reference list of widely used third-party
// packages. Callers register project-specific packages with AddThirdParty
// or AddThirdPartyBulk.
var defaultThirdPartyPackages = []string{
	"pydantic",
	"httpx",
	"requests",
	"fastapi",
	"flask",
	"django",
	"numpy",
	"pandas",
	"pytest",
	"sqlalchemy",
}
