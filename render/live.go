package render

import (
	"fmt"
	"strings"
)

// LiveFragment renders the block list as an HTML fragment for the editor
// preview pane. Preview always runs in demo mode, so no tracking
// attributes are emitted even if the caller forgets to set the sentinel.
func LiveFragment(blocks []Node) string {
	var b strings.Builder
	writeNodes(&b, blocks, liveMode)
	return b.String()
}

// Live renders the full public page: the same content the static export
// produces, plus the client runtime. Tracking is fire-and-forget via
// sendBeacon; a failed beacon never blocks navigation and errors are
// swallowed on the client just as they are on the server. Lead forms
// submit over fetch and swap in a confirmation or a retryable error
// state in place, so the visitor never leaves the page.
func Live(title string, nodes []Node, ctx Context) string {
	var body strings.Builder
	writeNodes(&body, nodes, liveMode)

	script := liveScript(ctx)
	if containsForm(nodes) {
		script = leadFormScript + script
	}

	var b strings.Builder
	documentShell(&b, title, ctx.Theme, body.String(), script)
	return b.String()
}

func containsForm(nodes []Node) bool {
	for _, n := range nodes {
		if n.Kind == FormNode || containsForm(n.Children) {
			return true
		}
	}
	return false
}

// leadFormScript intercepts lead-form submits. Success replaces the form
// with a confirmation; failure shows an error note and re-enables the
// button for a retry. The static export keeps the plain form post.
const leadFormScript = `(function(){
document.addEventListener('submit',function(e){
var f=e.target;
if(!f.classList||!f.classList.contains('lead-form'))return;
e.preventDefault();
var btn=f.querySelector('button'),note=f.querySelector('.form-note');
if(!note){note=document.createElement('p');note.className='form-note';f.appendChild(note);}
note.textContent='';
if(btn)btn.disabled=true;
fetch(f.action,{method:'POST',headers:{'Content-Type':'application/json'},body:JSON.stringify({email:f.email.value})})
.then(function(r){if(!r.ok)throw 0;f.innerHTML='<p class="form-note">Thanks! Check your inbox.</p>';})
.catch(function(){if(btn)btn.disabled=false;note.textContent='Something went wrong. Please try again.';});
});
})();`

func liveScript(ctx Context) string {
	if !ctx.Tracked() {
		return ""
	}

	endpoint := ctx.APIBase + "/api/v1/events"
	return fmt.Sprintf(`(function(){
var page=%q,api=%q;
function send(p){try{navigator.sendBeacon(api,JSON.stringify(p))}catch(e){}}
var depth=0,start=Date.now();
window.addEventListener('scroll',function(){
var h=document.documentElement.scrollHeight-window.innerHeight;
if(h>0){var d=Math.round((window.scrollY/h)*100);if(d>depth)depth=d;}
},{passive:true});
var sent=false;
window.addEventListener('pagehide',function(){
if(sent)return;sent=true;
send({page_id:page,kind:'page_view',scroll_depth:depth,time_spent:Math.round((Date.now()-start)/1000)});
});
document.addEventListener('click',function(e){
var a=e.target.closest&&e.target.closest('a[data-track]');
if(!a)return;
send({page_id:page,kind:'click',url:a.href});
});
})();`, ctx.PageID, endpoint)
}
