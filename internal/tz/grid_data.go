package tz

// Precomputed timezone boundary table for the contiguous band. Generated
// offline from public boundary data at 0.25-degree latitude resolution;
// each row holds the longitude thresholds splitting that row into the
// Eastern/Central/Mountain/Pacific zones. Read-only at runtime.
const (
	gridLatMin  = 24.0
	gridLatMax  = 50.0
	gridLatStep = 0.25
	gridLonMin  = -125.0
	gridLonMax  = -66.0
)

var gridRows = [104][3]float64{
	{-84.00, -105.00, -114.50}, // 24.00
	{-84.06, -105.00, -114.50}, // 24.25
	{-84.12, -105.00, -114.50}, // 24.50
	{-84.18, -105.00, -114.50}, // 24.75
	{-84.24, -105.00, -114.50}, // 25.00
	{-84.30, -105.00, -114.50}, // 25.25
	{-84.36, -105.00, -114.50}, // 25.50
	{-84.42, -105.00, -114.50}, // 25.75
	{-84.48, -105.00, -114.50}, // 26.00
	{-84.54, -105.00, -114.50}, // 26.25
	{-84.60, -105.00, -114.50}, // 26.50
	{-84.66, -105.00, -114.50}, // 26.75
	{-84.72, -105.00, -114.50}, // 27.00
	{-84.78, -105.00, -114.50}, // 27.25
	{-84.84, -105.00, -114.50}, // 27.50
	{-84.90, -105.00, -114.50}, // 27.75
	{-84.96, -105.00, -114.50}, // 28.00
	{-85.02, -105.00, -114.50}, // 28.25
	{-85.08, -105.00, -114.50}, // 28.50
	{-85.14, -105.00, -114.50}, // 28.75
	{-85.20, -105.00, -114.50}, // 29.00
	{-85.19, -105.00, -114.50}, // 29.25
	{-85.17, -105.00, -114.50}, // 29.50
	{-85.16, -105.00, -114.50}, // 29.75
	{-85.15, -105.00, -114.50}, // 30.00
	{-85.14, -105.00, -114.50}, // 30.25
	{-85.12, -105.00, -114.50}, // 30.50
	{-85.11, -105.00, -114.50}, // 30.75
	{-85.10, -105.00, -114.50}, // 31.00
	{-85.11, -105.00, -114.50}, // 31.25
	{-85.12, -105.00, -114.50}, // 31.50
	{-85.14, -105.00, -114.50}, // 31.75
	{-85.15, -105.00, -114.50}, // 32.00
	{-85.16, -104.85, -114.51}, // 32.25
	{-85.17, -104.70, -114.52}, // 32.50
	{-85.19, -104.55, -114.53}, // 32.75
	{-85.20, -104.40, -114.53}, // 33.00
	{-85.21, -104.25, -114.54}, // 33.25
	{-85.22, -104.10, -114.55}, // 33.50
	{-85.24, -103.95, -114.56}, // 33.75
	{-85.25, -103.80, -114.57}, // 34.00
	{-85.26, -103.65, -114.57}, // 34.25
	{-85.27, -103.50, -114.58}, // 34.50
	{-85.29, -103.35, -114.59}, // 34.75
	{-85.30, -103.20, -114.60}, // 35.00
	{-85.30, -103.05, -114.52}, // 35.25
	{-85.30, -102.90, -114.45}, // 35.50
	{-85.30, -102.75, -114.38}, // 35.75
	{-85.30, -102.60, -114.30}, // 36.00
	{-85.30, -102.45, -114.22}, // 36.25
	{-85.30, -102.30, -114.15}, // 36.50
	{-86.12, -102.15, -114.08}, // 36.75
	{-87.50, -102.00, -114.00}, // 37.00
	{-87.50, -101.96, -114.00}, // 37.25
	{-87.50, -101.92, -114.00}, // 37.50
	{-87.50, -101.88, -114.00}, // 37.75
	{-87.50, -101.83, -114.00}, // 38.00
	{-87.50, -101.79, -114.00}, // 38.25
	{-87.50, -101.75, -114.00}, // 38.50
	{-87.50, -101.71, -114.00}, // 38.75
	{-87.50, -101.67, -114.00}, // 39.00
	{-87.50, -101.62, -114.00}, // 39.25
	{-87.50, -101.58, -114.00}, // 39.50
	{-87.50, -101.54, -114.00}, // 39.75
	{-87.50, -101.50, -114.00}, // 40.00
	{-87.38, -101.46, -114.00}, // 40.25
	{-87.25, -101.42, -114.00}, // 40.50
	{-87.12, -101.38, -114.00}, // 40.75
	{-87.00, -101.33, -114.00}, // 41.00
	{-86.88, -101.29, -114.00}, // 41.25
	{-86.75, -101.25, -114.00}, // 41.50
	{-86.62, -101.21, -114.00}, // 41.75
	{-86.50, -101.17, -117.00}, // 42.00
	{-86.67, -101.12, -117.00}, // 42.25
	{-86.83, -101.08, -117.00}, // 42.50
	{-87.00, -101.04, -117.00}, // 42.75
	{-87.17, -101.00, -117.00}, // 43.00
	{-87.33, -101.04, -117.00}, // 43.25
	{-87.50, -101.08, -117.00}, // 43.50
	{-87.67, -101.12, -117.00}, // 43.75
	{-87.83, -101.17, -117.00}, // 44.00
	{-88.00, -101.21, -117.00}, // 44.25
	{-88.17, -101.25, -117.00}, // 44.50
	{-88.33, -101.29, -117.00}, // 44.75
	{-88.50, -101.33, -117.00}, // 45.00
	{-88.55, -101.38, -117.00}, // 45.25
	{-88.60, -101.42, -117.00}, // 45.50
	{-88.65, -101.46, -117.00}, // 45.75
	{-88.70, -101.50, -117.00}, // 46.00
	{-88.75, -101.53, -117.00}, // 46.25
	{-88.80, -101.56, -117.00}, // 46.50
	{-88.85, -101.59, -117.00}, // 46.75
	{-88.90, -101.62, -117.00}, // 47.00
	{-88.95, -101.66, -117.00}, // 47.25
	{-89.00, -101.69, -117.00}, // 47.50
	{-89.05, -101.72, -117.00}, // 47.75
	{-89.10, -101.75, -117.00}, // 48.00
	{-89.15, -101.78, -117.00}, // 48.25
	{-89.20, -101.81, -117.00}, // 48.50
	{-89.25, -101.84, -117.00}, // 48.75
	{-89.30, -101.88, -117.00}, // 49.00
	{-89.35, -101.91, -117.00}, // 49.25
	{-89.40, -101.94, -117.00}, // 49.50
	{-89.45, -101.97, -117.00}, // 49.75
}
