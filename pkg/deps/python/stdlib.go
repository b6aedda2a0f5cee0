package python

// stdlibModules is the enumerated set of standard-library top-level module
// names excluded from package dependencies. Membership is an exact lookup,
// not a heuristic.
var stdlibModules = map[string]bool{
	"__future__": true, "abc": true, "argparse": true, "array": true,
	"ast": true, "asyncio": true, "atexit": true, "base64": true,
	"bisect": true, "builtins": true, "bz2": true, "calendar": true,
	"cmath": true, "cmd": true, "collections": true, "concurrent": true,
	"configparser": true, "contextlib": true, "copy": true, "copyreg": true,
	"csv": true, "ctypes": true, "dataclasses": true, "datetime": true,
	"decimal": true, "difflib": true, "dis": true, "email": true,
	"enum": true, "errno": true, "faulthandler": true, "fcntl": true,
	"filecmp": true, "fileinput": true, "fnmatch": true, "fractions": true,
	"ftplib": true, "functools": true, "gc": true, "getopt": true,
	"getpass": true, "gettext": true, "glob": true, "gzip": true,
	"hashlib": true, "heapq": true, "hmac": true, "html": true,
	"http": true, "imaplib": true, "importlib": true, "inspect": true,
	"io": true, "ipaddress": true, "itertools": true, "json": true,
	"keyword": true, "linecache": true, "locale": true, "logging": true,
	"lzma": true, "mailbox": true, "math": true, "mimetypes": true,
	"multiprocessing": true, "netrc": true, "numbers": true, "operator": true,
	"os": true, "pathlib": true, "pdb": true, "pickle": true,
	"pkgutil": true, "platform": true, "plistlib": true, "poplib": true,
	"posixpath": true, "pprint": true, "profile": true, "pstats": true,
	"pty": true, "pwd": true, "py_compile": true, "queue": true,
	"quopri": true, "random": true, "re": true, "readline": true,
	"reprlib": true, "resource": true, "runpy": true, "sched": true,
	"secrets": true, "select": true, "selectors": true, "shelve": true,
	"shlex": true, "shutil": true, "signal": true, "site": true,
	"smtplib": true, "socket": true, "socketserver": true, "sqlite3": true,
	"ssl": true, "stat": true, "statistics": true, "string": true,
	"stringprep": true, "struct": true, "subprocess": true, "symtable": true,
	"sys": true, "sysconfig": true, "syslog": true, "tarfile": true,
	"tempfile": true, "termios": true, "textwrap": true, "threading": true,
	"time": true, "timeit": true, "tkinter": true, "token": true,
	"tokenize": true, "tomllib": true, "trace": true, "traceback": true,
	"tracemalloc": true, "tty": true, "turtle": true, "types": true,
	"typing": true, "unicodedata": true, "unittest": true, "urllib": true,
	"uuid": true, "venv": true, "warnings": true, "wave": true,
	"weakref": true, "webbrowser": true, "wsgiref": true, "xml": true,
	"xmlrpc": true, "zipapp": true, "zipfile": true, "zipimport": true,
	"zlib": true, "zoneinfo": true,
}

// IsStdlib reports whether module is a standard-library top-level module.
func IsStdlib(module string) bool {
	return stdlibModules[module]
}
