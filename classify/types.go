package classify

// builtinTypes maps lower-cased extensions to content types.
// Extensions missing from the table are unrecognized; ".bin" is left out on
// purpose so opaque blobs sort into Miscellaneous.
var builtinTypes = map[string]string{
	// text
	".txt":      "text/plain",
	".text":     "text/plain",
	".log":      "text/plain",
	".md":       "text/markdown",
	".markdown": "text/markdown",
	".rst":      "text/x-rst",
	".csv":      "text/csv",
	".tsv":      "text/tab-separated-values",
	".html":     "text/html",
	".htm":      "text/html",
	".css":      "text/css",
	".xml":      "text/xml",
	".ics":      "text/calendar",
	".vcf":      "text/vcard",
	".rtf":      "text/rtf",
	".go":       "text/x-go",
	".c":        "text/x-c",
	".h":        "text/x-c",
	".py":       "text/x-python",
	".java":     "text/x-java-source",
	".sh":       "text/x-shellscript",
	".srt":      "text/plain",
	".vtt":      "text/vtt",

	// documents registered under application/
	".pdf":  "application/pdf",
	".yaml": "application/yaml",
	".yml":  "application/yaml",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".dotx": "application/vnd.openxmlformats-officedocument.wordprocessingml.template",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".xltx": "application/vnd.openxmlformats-officedocument.spreadsheetml.template",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".potx": "application/vnd.openxmlformats-officedocument.presentationml.template",
	".ppsx": "application/vnd.openxmlformats-officedocument.presentationml.slideshow",

	// images
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".ico":  "image/vnd.microsoft.icon",
	".heic": "image/heic",
	".heif": "image/heif",
	".avif": "image/avif",
	".psd":  "image/vnd.adobe.photoshop",

	// video
	".mp4":  "video/mp4",
	".m4v":  "video/x-m4v",
	".mkv":  "video/x-matroska",
	".webm": "video/webm",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".wmv":  "video/x-ms-wmv",
	".flv":  "video/x-flv",
	".mpeg": "video/mpeg",
	".mpg":  "video/mpeg",
	".3gp":  "video/3gpp",
	".ts":   "video/mp2t",

	// audio
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".flac": "audio/flac",
	".ogg":  "audio/ogg",
	".oga":  "audio/ogg",
	".opus": "audio/opus",
	".m4a":  "audio/mp4",
	".aac":  "audio/aac",
	".wma":  "audio/x-ms-wma",
	".mid":  "audio/midi",
	".midi": "audio/midi",
	".aiff": "audio/aiff",

	// applications and other binary formats
	".zip":  "application/zip",
	".gz":   "application/gzip",
	".tgz":  "application/gzip",
	".tar":  "application/x-tar",
	".bz2":  "application/x-bzip2",
	".xz":   "application/x-xz",
	".7z":   "application/x-7z-compressed",
	".rar":  "application/vnd.rar",
	".zst":  "application/zstd",
	".exe":  "application/vnd.microsoft.portable-executable",
	".msi":  "application/x-msdownload",
	".dmg":  "application/x-apple-diskimage",
	".pkg":  "application/octet-stream",
	".deb":  "application/vnd.debian.binary-package",
	".rpm":  "application/x-rpm",
	".apk":  "application/vnd.android.package-archive",
	".jar":  "application/java-archive",
	".iso":  "application/x-iso9660-image",
	".json": "application/json",
	".js":   "application/javascript",
	".wasm": "application/wasm",
	".sql":  "application/sql",
	".doc":  "application/msword",
	".xls":  "application/vnd.ms-excel",
	".ppt":  "application/vnd.ms-powerpoint",
	".odt":  "application/vnd.oasis.opendocument.text",
	".ods":  "application/vnd.oasis.opendocument.spreadsheet",
	".odp":  "application/vnd.oasis.opendocument.presentation",
	".epub": "application/epub+zip",
	".toml": "application/toml",
	".ttf":  "font/ttf",
	".otf":  "font/otf",
	".woff": "font/woff",
}
