package errs

var EmptyString = New("empty string")

var InvalidDimension = New("dimension must be a positive finite number")

var InvalidResolution = New("resolution must be a positive number")

var MissingFontFamily = New("font family not found")

var MissingFontAlias = New("font alias not registered")

var DuplicateFontAlias = New("font alias already registered")

var UnsupportedFormat = New("unsupported export format")

var ErrEmptyFigure = New("empty figure")
