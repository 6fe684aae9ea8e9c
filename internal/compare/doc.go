// Package compare reconciles homepage claims against crawl detections.
//
// A static many-to-many relation maps each claim category to the
// detection patterns that could substantiate it. For each claim, the
// related pattern with the highest observed confidence decides the
// outcome: at or above 50 the claim is matched, between 25 and 49 it is
// a weak detection, below 25 (or with no match at all) it is claimed
// but not detected. Features scoring 25 or more whose patterns relate
// to no extracted claim surface as underpromoted.
//
// Findings are ordered by severity: unbacked claims first, weak
// detections next, underpromoted features last. The thresholds and the
// 25-point scale are product constants shared with the claim extractor.
package compare
