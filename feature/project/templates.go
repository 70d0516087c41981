package project

// Project file names and directories.
const (
	IndexFile  = "index.html"
	SketchFile = "sketch.js"
	StyleFile  = "style.css"
	RecordFile = "sketch.json"
	TypesFile  = "types/p5.d.ts"
	LibDir     = "libraries"
)

// typesURLTemplate locates the p5 type definitions for a version. The verb
// is the version.
const typesURLTemplate = "https://cdn.jsdelivr.net/npm/p5@%s/lib/p5.d.ts"

// indexTemplate is the scaffold for index.html. The verb is the sketch name.
// The p5:library comment is the marker the reconciliation engine replaces
// with the actual script reference.
const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>%s</title>
  <!-- p5:library -->
  <link rel="stylesheet" href="style.css">
</head>
<body>
  <main></main>
  <script src="sketch.js"></script>
</body>
</html>
`

// sketchTemplate is the scaffold for sketch.js.
const sketchTemplate = `function setup() {
  createCanvas(windowWidth, windowHeight);
}

function draw() {
  background(220);
}

function windowResized() {
  resizeCanvas(windowWidth, windowHeight);
}
`

// styleTemplate is the scaffold for style.css.
const styleTemplate = `html, body {
  margin: 0;
  padding: 0;
}

canvas {
  display: block;
}
`
