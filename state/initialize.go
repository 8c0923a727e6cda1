package state

import (
	"time"

	"stylegen/common"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
		DefaultSamples: map[common.SampleBlock][]byte{
			common.SampleBlockMasthead: []byte(`<header class="masthead">
  <h1>Theme preview</h1>
  <p>Specimen of every styled element, compiled from the theme document.</p>
</header>`),
			common.SampleBlockPalette: []byte(`<section class="palette">
  <h2>Palette</h2>
  <ul class="swatches"></ul>
</section>`),
			common.SampleBlockTypography: []byte(`<section class="type-specimen">
  <h2>Typography</h2>
  <h1>First level heading</h1>
  <h2>Second level heading</h2>
  <h3>Third level heading</h3>
  <h4>Fourth level heading</h4>
  <h5>Fifth level heading</h5>
  <h6>Sixth level heading</h6>
  <p>The quick brown fox jumps over the lazy dog. Sphinx of black quartz, judge my vow. Pack my box with five dozen liquor jugs.</p>
  <p>Съешь же ещё этих мягких французских булок, да выпей чаю.</p>
  <blockquote>
    <p>Typography is the craft of endowing human language with a durable visual form.</p>
    <cite>Robert Bringhurst</cite>
  </blockquote>
</section>`),
			common.SampleBlockElements: []byte(`<section class="element-specimen">
  <h2>Elements</h2>
  <p>Running text with an inline <a href="#">link</a> in the middle.</p>
  <p><button type="button">Primary action</button> <span class="button">Secondary action</span></p>
  <pre><code>.lead { font-size: 1.25rem; line-height: 1.6; }</code></pre>
  <figure>
    <figcaption class="caption">Figure caption specimen.</figcaption>
  </figure>
  <ul>
    <li>First list entry</li>
    <li>Second list entry</li>
    <li>Third list entry</li>
  </ul>
  <table>
    <thead>
      <tr><th>Property</th><th>Value</th></tr>
    </thead>
    <tbody>
      <tr><td>font-size</td><td>2em</td></tr>
      <tr><td>line-height</td><td>1.5</td></tr>
    </tbody>
  </table>
</section>`),
			common.SampleBlockFooter: []byte(`<footer class="colophon">
  <p>Review the specimen before publishing the theme.</p>
</footer>`),
		},
	}
}
